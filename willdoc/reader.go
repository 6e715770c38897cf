package willdoc

import (
	"archive/zip"
	"fmt"
	"io"
	"path"

	"github.com/tsawler/inkwill/model"
)

// Reader provides access to a WILL container's sections and builds the
// document model from them.
type Reader struct {
	zr       *zip.ReadCloser
	zrReader *zip.Reader // For when opened from io.ReaderAt
	sections []*RawSection
}

// Open opens a WILL container from a path. The cause of the open failure
// stays in the error message so a missing file is distinguishable from a
// corrupt archive.
func Open(filePath string) (*Reader, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, &ContainerError{Offset: -1, Err: fmt.Errorf("%w: %v", ErrNotAContainer, err)}
	}

	r := &Reader{zr: zr}
	if err := r.init(&zr.Reader); err != nil {
		zr.Close()
		return nil, err
	}

	return r, nil
}

// OpenReader opens a WILL container from an io.ReaderAt.
func OpenReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, &ContainerError{Offset: -1, Err: fmt.Errorf("%w: %v", ErrNotAContainer, err)}
	}

	r := &Reader{zrReader: zr}
	if err := r.init(zr); err != nil {
		return nil, err
	}

	return r, nil
}

// init locates every page section and decodes its raw records. The root
// relationship index must be read first; sub-streams cannot be located
// without it.
func (r *Reader) init(zr *zip.Reader) error {
	if !hasEntry(zr, rootRelsPath) {
		return &ContainerError{Entry: rootRelsPath, Offset: -1, Err: ErrNotAContainer}
	}

	rels, err := parseRels(zr, rootRelsPath)
	if err != nil {
		return err
	}
	sectionRels, err := sectionRelationships(rels)
	if err != nil {
		return err
	}

	r.sections = make([]*RawSection, 0, len(sectionRels))
	for _, rel := range sectionRels {
		section, err := r.loadSection(zr, rel)
		if err != nil {
			return err
		}
		r.sections = append(r.sections, section)
	}
	return nil
}

// loadSection reads one section: its .rels names the media blob, its SVG
// stub carries the page size, and the blob holds the raw path records.
func (r *Reader) loadSection(zr *zip.Reader, rel relationship) (*RawSection, error) {
	svgName := path.Base(rel.Target)

	sectionRels, err := parseRels(zr, "sections/_rels/"+svgName+".rels")
	if err != nil {
		return nil, err
	}
	if len(sectionRels.Relationship) == 0 {
		return nil, &ContainerError{
			Entry:  "sections/_rels/" + svgName + ".rels",
			Offset: -1,
			Err:    ErrTruncatedStream,
		}
	}
	mediaName := "sections/media/" + path.Base(sectionRels.Relationship[0].Target)

	stub, err := readEntry(zr, "sections/"+svgName)
	if err != nil {
		return nil, err
	}
	width, height := parseSectionSize(stub)

	blob, err := readEntry(zr, mediaName)
	if err != nil {
		return nil, err
	}
	paths, err := decodeSectionBlob(blob, mediaName)
	if err != nil {
		return nil, err
	}

	return &RawSection{Width: width, Height: height, Paths: paths}, nil
}

// Close closes the reader and releases resources.
func (r *Reader) Close() error {
	if r.zr != nil {
		return r.zr.Close()
	}
	return nil
}

// SectionCount returns the number of page sections in the container.
func (r *Reader) SectionCount() int {
	return len(r.sections)
}

// Sections returns the raw decoded sections in document order.
func (r *Reader) Sections() []*RawSection {
	return r.sections
}

// Document builds the document model in strict mode.
func (r *Reader) Document() (*model.Document, []Warning, error) {
	return Build(r.sections)
}

// DocumentWithOptions builds the document model with the given options.
func (r *Reader) DocumentWithOptions(opts BuildOptions) (*model.Document, []Warning, error) {
	return BuildWithOptions(r.sections, opts)
}
