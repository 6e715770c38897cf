// Package wire provides low-level decoding of protobuf wire-format data.
//
// The WILL container stores stroke data as serialized protocol buffer
// messages. This package implements the subset of the wire format those
// messages use, without generated code or a schema: a message is scanned
// into a generic [Record] holding every field that was present, keyed by
// field number. Known field numbers are read through typed accessors;
// unknown field numbers are preserved in the record untouched, so captures
// produced by newer firmware decode without failing.
//
// # Scanning
//
// [Parse] scans one message:
//
//	rec, err := wire.Parse(data)
//	precision, ok := rec.Uint(3)
//
// All reads are bounds-checked. A read past the end of the buffer yields
// [ErrTruncated] with the offending byte offset, never a panic.
//
// # Packed values
//
// Point coordinates and stroke widths are stored as packed, zigzag-encoded
// sint32 sequences, often additionally delta-encoded. [PackedSint32]
// unpacks the integers and [DeltaDecode] resolves a running-sum encoding
// into scaled floating-point values.
//
// # Length-prefixed streams
//
// A section's stroke blob is a concatenation of varint-length-prefixed
// messages. [Messages] splits such a stream into its message payloads.
package wire
