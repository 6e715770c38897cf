// Package willdoc provides WILL ink container parsing.
//
// A .will file is an OPC-style ZIP archive produced by Wacom pen devices
// and their companion apps. The package decodes the container in two
// stages matching the two halves of the format:
//
//  1. Container decode: the archive's _rels/.rels relationship index is
//     read to locate each page section, every section's own .rels names
//     the media blob holding its stroke data, and that blob is scanned
//     into raw, untyped path records ([RawSection], [RawPath]) using the
//     wire package. Unknown record fields are preserved so captures from
//     newer firmware decode without failing.
//  2. Model build: [Build] lifts the raw records into a [model.Document],
//     normalizing fixed-point coordinates and delta-encoded widths into
//     floating-point device units and enforcing the structural
//     invariants (non-empty strokes, monotonic timestamps).
//
// # Opening containers
//
// Use [Open] for a file path or [OpenReader] for in-memory data:
//
//	r, err := willdoc.Open("capture.will")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	doc, warnings, err := r.Document()
//
// # Strict and lenient mode
//
// By default a stroke that violates a structural invariant aborts the
// whole build ([ModelError]). Lenient mode instead drops the offending
// stroke and records a [Warning], trading completeness for availability
// on slightly malformed real-world captures:
//
//	doc, warnings, err := r.DocumentWithOptions(willdoc.BuildOptions{Lenient: true})
//
// Dropped strokes are always enumerable through the returned warnings;
// nothing is silently discarded.
//
// # Errors
//
// Container-level failures are reported as [ContainerError] values
// wrapping one of the kind sentinels (ErrNotAContainer,
// ErrUnsupportedVersion, ErrTruncatedStream, ErrChecksumMismatch).
// Model-level failures are [ModelError] values wrapping
// ErrMissingRequiredField, ErrInvalidPointCount, or
// ErrInconsistentTimestamps. Both carry enough context (entry name, byte
// offset, page and stroke index) to diagnose a bad capture. Use
// errors.Is to test for a kind.
package willdoc
