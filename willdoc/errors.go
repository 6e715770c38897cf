package willdoc

import (
	"errors"
	"fmt"
)

// Container decode error kinds.
var (
	// ErrNotAContainer is returned when the input is not a WILL archive.
	ErrNotAContainer = errors.New("will: not a WILL container")

	// ErrUnsupportedVersion is returned when a section uses a relationship
	// schema this decoder does not recognize.
	ErrUnsupportedVersion = errors.New("will: unsupported format version")

	// ErrTruncatedStream is returned when an entry or record ends before
	// its declared length.
	ErrTruncatedStream = errors.New("will: truncated stream")

	// ErrChecksumMismatch is returned when an archive entry fails its
	// integrity check during decompression.
	ErrChecksumMismatch = errors.New("will: checksum mismatch")
)

// Model construction error kinds.
var (
	// ErrMissingRequiredField is returned when a path record lacks a field
	// the model cannot be built without.
	ErrMissingRequiredField = errors.New("will: missing required field")

	// ErrInvalidPointCount is returned when a path record's point data
	// decodes to no points or to a dangling half coordinate pair.
	ErrInvalidPointCount = errors.New("will: invalid point count")

	// ErrInconsistentTimestamps is returned when a stroke's timestamps
	// are not non-decreasing.
	ErrInconsistentTimestamps = errors.New("will: inconsistent timestamps")
)

// ContainerError reports a failure while unpacking the archive or
// scanning a section's raw records. Err wraps one of the container kind
// sentinels, so errors.Is(err, willdoc.ErrTruncatedStream) works.
type ContainerError struct {
	Entry  string // Archive entry being decoded, if known
	Offset int64  // Byte offset within the entry, or -1 if not applicable
	Err    error
}

func (e *ContainerError) Error() string {
	switch {
	case e.Entry != "" && e.Offset >= 0:
		return fmt.Sprintf("%v (entry %q, offset %d)", e.Err, e.Entry, e.Offset)
	case e.Entry != "":
		return fmt.Sprintf("%v (entry %q)", e.Err, e.Entry)
	default:
		return e.Err.Error()
	}
}

func (e *ContainerError) Unwrap() error {
	return e.Err
}

// ModelError reports a structural invariant violation while lifting raw
// records into the document model. Err wraps one of the model kind
// sentinels.
type ModelError struct {
	Page   int // 0-based page index
	Stroke int // 0-based stroke index within the page
	Err    error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("%v (page %d, stroke %d)", e.Err, e.Page, e.Stroke)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// Warning records a stroke dropped in lenient mode. Warnings make lenient
// drops enumerable by the caller after the fact.
type Warning struct {
	Page    int
	Stroke  int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("page %d, stroke %d: %s", w.Page, w.Stroke, w.Message)
}
