// Package format provides file format detection for the inkwill library.
package format

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported ink file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// WILL indicates a packaged ink container (a ZIP archive with an
	// OPC relationship tree).
	WILL
	// Section indicates a bare stroke blob, the payload a container
	// stores under its media directory.
	Section
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case WILL:
		return "WILL"
	case Section:
		return "Section"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case WILL:
		return ".will"
	case Section:
		return ".protobuf"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".will":
		return WILL
	case ".protobuf", ".strokes":
		return Section
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format.
// This provides more reliable detection than extension-based detection.
// Returns Unknown if the format cannot be determined from the leading
// bytes alone.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// ZIP magic: PK\x03\x04. Could be any OPC package; the caller
	// should use DetectFromReader to confirm the relationship tree.
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return Unknown
	}

	if looksLikeSection(data) {
		return Section
	}

	return Unknown
}

// DetectFromReader inspects the content to determine format.
// This is more reliable than extension-based detection and can
// distinguish an ink container from other ZIP archives by its
// relationship tree.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 64)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if len(magic) >= 4 && magic[0] == 0x50 && magic[1] == 0x4B && magic[2] == 0x03 && magic[3] == 0x04 {
		return detectZIPFormat(r, size)
	}

	if looksLikeSection(magic) {
		return Section, nil
	}

	return Unknown, nil
}

// detectZIPFormat inspects a ZIP archive for the OPC relationship entry
// an ink container always carries.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		if f.Name == "_rels/.rels" {
			return WILL, nil
		}
	}

	return Unknown, nil
}

// looksLikeSection reports whether data plausibly starts a stroke blob:
// a varint message length followed by a low-numbered field tag.
func looksLikeSection(data []byte) bool {
	length, pos := 0, 0
	for shift := 0; pos < len(data); shift += 7 {
		b := data[pos]
		length |= int(b&0x7f) << shift
		pos++
		if b < 0x80 {
			break
		}
		if shift > 28 {
			return false
		}
	}
	if pos >= len(data) || length == 0 {
		return false
	}

	// Stroke records only use single-digit field numbers.
	tag := data[pos]
	num := tag >> 3
	typ := tag & 0x07
	if num == 0 || num > 9 {
		return false
	}
	return typ == 0 || typ == 2 || typ == 5
}
