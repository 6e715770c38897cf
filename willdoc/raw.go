package willdoc

import (
	"fmt"

	"github.com/tsawler/inkwill/wire"
)

// Path record field numbers in the section media blob.
const (
	fieldStartParameter   = 1 // float, default 0
	fieldEndParameter     = 2 // float, default 1
	fieldDecimalPrecision = 3 // uint32, default 2
	fieldPoints           = 4 // bytes: packed sint32, delta-encoded x/y pairs
	fieldStrokeWidths     = 5 // bytes: packed sint32, delta-encoded
	fieldStrokeColor      = 6 // bytes: packed sint32 RGBA
)

// defaultPrecision is the decimal precision assumed when a path record
// omits field 3.
const defaultPrecision = 2

// RawPath is one raw, unnormalized path record as stored in a section's
// media blob. Known fields are pre-extracted; Record retains the full
// tagged-field tree, including fields this decoder does not know about.
type RawPath struct {
	Start     float32
	End       float32
	Precision uint32
	Points    []byte // Still packed; nil when the record carried no point data
	Widths    []byte
	Color     []byte
	Record    *wire.Record
	Offset    int // Byte offset of the record within the section blob
}

// RawSection is one page worth of raw records plus the page geometry from
// the section's SVG stub.
type RawSection struct {
	Width  float64
	Height float64
	Paths  []RawPath
}

// DecodeSection scans a bare section media blob (a stream of varint
// length-prefixed path records) into a RawSection with the default page
// size. Containers are normally decoded through Open/OpenReader; this
// entry point serves recovery tooling that has only the blob.
func DecodeSection(data []byte) (*RawSection, error) {
	paths, err := decodeSectionBlob(data, "")
	if err != nil {
		return nil, err
	}
	return &RawSection{
		Width:  defaultPageWidth,
		Height: defaultPageHeight,
		Paths:  paths,
	}, nil
}

// decodeSectionBlob scans every path record in a section media blob.
// entry names the archive entry for error context.
func decodeSectionBlob(data []byte, entry string) ([]RawPath, error) {
	msgs, err := wire.Messages(data)
	if err != nil {
		return nil, wrapWireError(err, entry, 0)
	}

	paths := make([]RawPath, 0, len(msgs))
	offset := 0
	for _, msg := range msgs {
		rec, err := wire.Parse(msg)
		if err != nil {
			return nil, wrapWireError(err, entry, offset)
		}

		p := RawPath{
			Start:     0,
			End:       1,
			Precision: defaultPrecision,
			Record:    rec,
			Offset:    offset,
		}
		if v, ok := rec.Float32(fieldStartParameter); ok {
			p.Start = v
		}
		if v, ok := rec.Float32(fieldEndParameter); ok {
			p.End = v
		}
		if v, ok := rec.Uint(fieldDecimalPrecision); ok {
			p.Precision = uint32(v)
		}
		if b, ok := rec.Bytes(fieldPoints); ok {
			p.Points = b
		}
		if b, ok := rec.Bytes(fieldStrokeWidths); ok {
			p.Widths = b
		}
		if b, ok := rec.Bytes(fieldStrokeColor); ok {
			p.Color = b
		}
		paths = append(paths, p)

		// Advance past the record and its length prefix.
		offset += len(msg) + uvarintLen(uint64(len(msg)))
	}
	return paths, nil
}

// wrapWireError maps a wire-level failure onto the container error
// taxonomy: any malformed or short record is a truncated stream.
func wrapWireError(err error, entry string, offset int) error {
	return &ContainerError{Entry: entry, Offset: int64(offset), Err: fmt.Errorf("%w: %v", ErrTruncatedStream, err)}
}

func uvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}
