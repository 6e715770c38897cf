package willdoc

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"
)

// Relationship namespaces. The recognized namespace set is the format's
// version table: a section relationship outside it means the capture was
// written by a firmware revision this decoder does not understand.
const (
	sectionRelType = "http://schemas.willfileformat.org/2015/relationships/section"
	willNamespace  = "http://schemas.willfileformat.org/"
	rootRelsPath   = "_rels/.rels"
)

// relationshipsXML represents the structure of an OPC .rels part.
type relationshipsXML struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Relationship []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// readEntry reads a named entry from the archive. A missing entry yields
// ErrTruncatedStream; a decompression failure (the archive carries CRC32
// integrity data per entry) yields ErrChecksumMismatch.
func readEntry(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, &ContainerError{Entry: name, Offset: -1, Err: ErrChecksumMismatch}
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, &ContainerError{Entry: name, Offset: -1, Err: ErrChecksumMismatch}
		}
		return data, nil
	}
	return nil, &ContainerError{Entry: name, Offset: -1, Err: ErrTruncatedStream}
}

// hasEntry reports whether the archive contains the named entry.
func hasEntry(zr *zip.Reader, name string) bool {
	for _, f := range zr.File {
		if f.Name == name {
			return true
		}
	}
	return false
}

// parseRels parses one .rels part.
func parseRels(zr *zip.Reader, name string) (*relationshipsXML, error) {
	data, err := readEntry(zr, name)
	if err != nil {
		return nil, err
	}
	var rels relationshipsXML
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, &ContainerError{Entry: name, Offset: -1, Err: ErrNotAContainer}
	}
	return &rels, nil
}

// sectionRelationships returns the section relationships from the root
// .rels, in document order. A WILL-namespaced relationship of a type other
// than the known section type means an unsupported format revision;
// relationships from foreign namespaces (core properties, thumbnails) are
// ignored for forward compatibility.
func sectionRelationships(rels *relationshipsXML) ([]relationship, error) {
	var sections []relationship
	for _, r := range rels.Relationship {
		if r.Type == sectionRelType {
			sections = append(sections, r)
			continue
		}
		if strings.HasPrefix(r.Type, willNamespace) {
			return nil, &ContainerError{Entry: rootRelsPath, Offset: -1, Err: ErrUnsupportedVersion}
		}
	}
	return sections, nil
}
