package willdoc

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// Test fixture encoders. These produce the same byte layout the capture
// app writes: an OPC ZIP with a relationship index, one SVG stub plus
// .rels per section, and a media blob of length-prefixed path records.

func uvarint(v uint64) []byte {
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(buf, v)
	return buf[:n]
}

func zigzag(v int64) []byte {
	return uvarint(uint64((v << 1) ^ (v >> 63)))
}

func packSint32(vals ...int64) []byte {
	var out []byte
	for _, v := range vals {
		out = append(out, zigzag(v)...)
	}
	return out
}

func wireField(num int, typ int, payload []byte) []byte {
	out := uvarint(uint64(num)<<3 | uint64(typ))
	return append(out, payload...)
}

func wireBytes(num int, payload []byte) []byte {
	return wireField(num, 2, append(uvarint(uint64(len(payload))), payload...))
}

func wireFloat32(num int, v float32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
	return wireField(num, 5, buf[:])
}

// encodeCoords converts float coordinates into the fixed-point,
// delta-encoded integer pairs of the points field.
func encodeCoords(precision uint32, coords ...[2]float64) []int64 {
	scale := math.Pow(10, float64(precision))
	ints := make([]int64, 0, 2*len(coords))
	var prevX, prevY int64
	for i, c := range coords {
		x := int64(math.Round(c[0] * scale))
		y := int64(math.Round(c[1] * scale))
		if i == 0 {
			ints = append(ints, x, y)
		} else {
			ints = append(ints, x-prevX, y-prevY)
		}
		prevX, prevY = x, y
	}
	return ints
}

// encodeWidths converts float widths into fixed-point running deltas.
func encodeWidths(precision uint32, widths ...float64) []int64 {
	scale := math.Pow(10, float64(precision))
	ints := make([]int64, 0, len(widths))
	var prev int64
	for i, w := range widths {
		v := int64(math.Round(w * scale))
		if i == 0 {
			ints = append(ints, v)
		} else {
			ints = append(ints, v-prev)
		}
		prev = v
	}
	return ints
}

// pathRecord encodes one path message with the given already-encoded
// integer payloads.
func pathRecord(precision uint32, points, widths, color []int64) []byte {
	var msg []byte
	msg = append(msg, wireField(3, 0, uvarint(uint64(precision)))...)
	if points != nil {
		msg = append(msg, wireBytes(4, packSint32(points...))...)
	}
	if widths != nil {
		msg = append(msg, wireBytes(5, packSint32(widths...))...)
	}
	if color != nil {
		msg = append(msg, wireBytes(6, packSint32(color...))...)
	}
	return msg
}

// strokeRecord encodes a complete path record for the given coordinates.
func strokeRecord(precision uint32, width float64, color []int64, coords ...[2]float64) []byte {
	return pathRecord(precision,
		encodeCoords(precision, coords...),
		encodeWidths(precision, width),
		color)
}

// sectionBlob concatenates path records with their varint length prefixes.
func sectionBlob(records ...[]byte) []byte {
	var blob []byte
	for _, rec := range records {
		blob = append(blob, uvarint(uint64(len(rec)))...)
		blob = append(blob, rec...)
	}
	return blob
}

// willContainer assembles a complete in-memory WILL container with one
// section per blob.
func willContainer(t *testing.T, svgStub string, blobs ...[]byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	writeZipEntry := func(name string, data []byte) {
		t.Helper()
		fw, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatal(err)
		}
	}

	var rootRels bytes.Buffer
	rootRels.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	rootRels.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` + "\n")
	for i := range blobs {
		fmt.Fprintf(&rootRels,
			`  <Relationship Id="rId%d" Type="http://schemas.willfileformat.org/2015/relationships/section" Target="/sections/section%d.svg"/>`+"\n",
			i+1, i)
	}
	rootRels.WriteString(`</Relationships>`)
	writeZipEntry("_rels/.rels", rootRels.Bytes())

	for i, blob := range blobs {
		svgName := fmt.Sprintf("section%d.svg", i)
		mediaName := fmt.Sprintf("strokes%d.protobuf", i)

		writeZipEntry("sections/"+svgName, []byte(svgStub))
		writeZipEntry("sections/_rels/"+svgName+".rels", []byte(fmt.Sprintf(
			`<?xml version="1.0" encoding="UTF-8"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.willfileformat.org/2015/relationships/media" Target="/sections/media/%s"/>
</Relationships>`, mediaName)))
		writeZipEntry("sections/media/"+mediaName, blob)
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

const defaultStub = `<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg" width="600" height="800"/>`

// createTestWill writes a container to a temp file and returns its path.
func createTestWill(t *testing.T, svgStub string, blobs ...[]byte) string {
	t.Helper()

	data := willContainer(t, svgStub, blobs...)
	p := filepath.Join(t.TempDir(), "test.will")
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}
