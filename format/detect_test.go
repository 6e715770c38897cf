package format

import (
	"archive/zip"
	"bytes"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{WILL, "WILL"},
		{Section, "Section"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{WILL, ".will"},
		{Section, ".protobuf"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"notes.will", WILL},
		{"notes.WILL", WILL},
		{"notes.Will", WILL},
		{"blob.protobuf", Section},
		{"blob.strokes", Section},
		{"blob.STROKES", Section},
		{"notes.txt", Unknown},
		{"notes", Unknown},
		{"", Unknown},
		{"/path/to/notes.will", WILL},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

// buildZIP creates an in-memory ZIP archive with the given entries.
func buildZIP(t *testing.T, entries map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("writing entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}
	return buf.Bytes()
}

// sectionBlob is a minimal stroke blob: a one-record stream whose record
// holds a single varint field.
var sectionBlob = []byte{0x02, 0x18, 0x02}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"stroke blob", sectionBlob, Section},
		{"zip needs reader", []byte{0x50, 0x4B, 0x03, 0x04, 0x00}, Unknown},
		{"plain text", []byte("hello world"), Unknown},
		{"too short", []byte{0x02}, Unknown},
		{"empty", nil, Unknown},
		{"zero length prefix", []byte{0x00, 0x18, 0x02, 0x00}, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader(t *testing.T) {
	container := buildZIP(t, map[string]string{
		"_rels/.rels":      `<?xml version="1.0"?><Relationships/>`,
		"sections/p0.svg":  "<svg/>",
		"sections/media/p": "blob",
	})
	plainZip := buildZIP(t, map[string]string{
		"readme.txt": "not an ink file",
	})

	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"ink container", container, WILL},
		{"zip without relationships", plainZip, Unknown},
		{"bare stroke blob", sectionBlob, Section},
		{"plain text", []byte("hello world, this is not ink"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytes.NewReader(tt.data)
			got, err := DetectFromReader(r, int64(len(tt.data)))
			if err != nil {
				t.Fatalf("DetectFromReader() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFromReader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader_TruncatedZIP(t *testing.T) {
	data := []byte{0x50, 0x4B, 0x03, 0x04, 0x00, 0x00}
	r := bytes.NewReader(data)
	if _, err := DetectFromReader(r, int64(len(data))); err == nil {
		t.Error("expected an error for a truncated archive")
	}
}
