package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Wire-format errors.
var (
	// ErrTruncated is returned when a value extends past the end of the buffer.
	ErrTruncated = errors.New("wire: truncated stream")

	// ErrInvalidTag is returned when a field tag is malformed or uses a
	// wire type this format never produces.
	ErrInvalidTag = errors.New("wire: invalid field tag")

	// ErrOverflow is returned when a varint exceeds 64 bits.
	ErrOverflow = errors.New("wire: varint overflow")
)

// Type is the wire type of a field.
type Type int

// Wire types as defined by the protobuf encoding.
const (
	TypeVarint  Type = 0
	TypeFixed64 Type = 1
	TypeBytes   Type = 2
	TypeFixed32 Type = 5
)

// Field is one decoded field of a message. Varint, fixed32, and fixed64
// payloads are stored in Uint; length-delimited payloads in Bytes.
type Field struct {
	Num    int
	Type   Type
	Uint   uint64
	Bytes  []byte
	Offset int // Byte offset of the field's tag within the message
}

// Record is a generic tagged-field tree for one message. Fields appear in
// encounter order; repeated and unknown field numbers are all retained.
type Record struct {
	Fields []Field
}

// Uvarint decodes an unsigned varint starting at pos. It returns the value
// and the position of the first byte after it.
func Uvarint(data []byte, pos int) (uint64, int, error) {
	var v uint64
	for i := 0; ; i++ {
		if pos+i >= len(data) {
			return 0, 0, fmt.Errorf("%w: varint at offset %d", ErrTruncated, pos)
		}
		if i >= 10 {
			return 0, 0, fmt.Errorf("%w at offset %d", ErrOverflow, pos)
		}
		b := data[pos+i]
		v |= uint64(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			return v, pos + i + 1, nil
		}
	}
}

// Parse scans one wire-format message into a Record. Field order is
// preserved exactly as encountered; no field number is rejected.
func Parse(data []byte) (*Record, error) {
	rec := &Record{}
	pos := 0
	for pos < len(data) {
		tagPos := pos
		tag, next, err := Uvarint(data, pos)
		if err != nil {
			return nil, err
		}
		pos = next

		f := Field{
			Num:    int(tag >> 3),
			Type:   Type(tag & 0x7),
			Offset: tagPos,
		}
		if f.Num == 0 {
			return nil, fmt.Errorf("%w: field number 0 at offset %d", ErrInvalidTag, tagPos)
		}

		switch f.Type {
		case TypeVarint:
			f.Uint, pos, err = Uvarint(data, pos)
			if err != nil {
				return nil, err
			}
		case TypeFixed64:
			if pos+8 > len(data) {
				return nil, fmt.Errorf("%w: fixed64 at offset %d", ErrTruncated, pos)
			}
			f.Uint = binary.LittleEndian.Uint64(data[pos:])
			pos += 8
		case TypeFixed32:
			if pos+4 > len(data) {
				return nil, fmt.Errorf("%w: fixed32 at offset %d", ErrTruncated, pos)
			}
			f.Uint = uint64(binary.LittleEndian.Uint32(data[pos:]))
			pos += 4
		case TypeBytes:
			var n uint64
			n, pos, err = Uvarint(data, pos)
			if err != nil {
				return nil, err
			}
			if n > uint64(len(data)-pos) {
				return nil, fmt.Errorf("%w: %d payload bytes at offset %d", ErrTruncated, n, pos)
			}
			f.Bytes = data[pos : pos+int(n)]
			pos += int(n)
		default:
			return nil, fmt.Errorf("%w: wire type %d at offset %d", ErrInvalidTag, f.Type, tagPos)
		}

		rec.Fields = append(rec.Fields, f)
	}
	return rec, nil
}

// Field returns the first field with the given number.
func (r *Record) Field(num int) (Field, bool) {
	for _, f := range r.Fields {
		if f.Num == num {
			return f, true
		}
	}
	return Field{}, false
}

// Has reports whether a field with the given number is present.
func (r *Record) Has(num int) bool {
	_, ok := r.Field(num)
	return ok
}

// Uint returns the varint value of the given field number.
func (r *Record) Uint(num int) (uint64, bool) {
	f, ok := r.Field(num)
	if !ok || f.Type != TypeVarint {
		return 0, false
	}
	return f.Uint, true
}

// Sint returns the zigzag-decoded signed value of the given field number.
func (r *Record) Sint(num int) (int64, bool) {
	v, ok := r.Uint(num)
	if !ok {
		return 0, false
	}
	return unzigzag(v), true
}

// Float32 returns the fixed32 value of the given field number interpreted
// as an IEEE 754 float.
func (r *Record) Float32(num int) (float32, bool) {
	f, ok := r.Field(num)
	if !ok || f.Type != TypeFixed32 {
		return 0, false
	}
	return math.Float32frombits(uint32(f.Uint)), true
}

// Bytes returns the length-delimited payload of the given field number.
func (r *Record) Bytes(num int) ([]byte, bool) {
	f, ok := r.Field(num)
	if !ok || f.Type != TypeBytes {
		return nil, false
	}
	return f.Bytes, true
}

func unzigzag(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}
