// Package inkwill provides a fluent API for decoding packaged digital ink
// files and converting their strokes to SVG, InkML, JSON, and PDF.
//
// Basic usage:
//
//	doc, warnings, err := inkwill.Open("notes.will").Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", inkwill.FormatWarnings(warnings))
//	}
//
// With options:
//
//	paths, warnings, err := inkwill.Open("notes.will").
//	    Smoothed().
//	    Pages(1, 2).
//	    SaveSVG("out/notes.svg")
//
// For advanced use cases, the lower-level willdoc package is also available.
package inkwill

import (
	"github.com/tsawler/inkwill/model"
	"github.com/tsawler/inkwill/willdoc"
)

// Open opens an ink container and returns a Converter for fluent
// configuration. The returned Converter must be closed when done, either
// explicitly via Close() or implicitly when calling a terminal operation
// like Document().
//
// Example:
//
//	doc, warnings, err := inkwill.Open("notes.will").Document()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates a Converter from an already-opened willdoc.Reader.
// This is useful when you need more control over the reader lifecycle.
// Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := willdoc.Open("notes.will")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	doc, warnings, err := inkwill.FromReader(r).Document()
func FromReader(r *willdoc.Reader) *Converter {
	return &Converter{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := inkwill.Must(inkwill.Open("notes.will").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustDocument is a helper that wraps a call to Document() and panics if
// the error is non-nil. It discards warnings and returns just the decoded
// document.
//
// Example:
//
//	doc := inkwill.MustDocument(inkwill.Open("notes.will").Document())
func MustDocument(doc *model.Document, _ []Warning, err error) *model.Document {
	if err != nil {
		panic(err)
	}
	return doc
}
