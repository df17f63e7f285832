package xsb

import (
	"errors"
	"testing"
)

func TestByteReaderScalarReads(t *testing.T) {
	data := []byte{
		0x01,             // byte
		0xFE,             // int8 (-2)
		0x34, 0x12,       // uint16
		0x00, 0x80,       // int16 (-32768)
		0x01, 0x02, 0x03, // uint24
		0x78, 0x56, 0x34, 0x12, // uint32
		0x00, 0x00, 0x80, 0x3F, // float32 (1.0)
	}

	r := newByteReader(data)

	if got := r.readByte(); got != 0x01 {
		t.Fatalf("readByte()=%#x, want 0x01", got)
	}

	if got := r.readInt8(); got != -2 {
		t.Fatalf("readInt8()=%d, want -2", got)
	}

	if got := r.readUint16(); got != 0x1234 {
		t.Fatalf("readUint16()=%#x, want 0x1234", got)
	}

	if got := r.readInt16(); got != -32768 {
		t.Fatalf("readInt16()=%d, want -32768", got)
	}

	if got := r.readUint24(); got != 0x030201 {
		t.Fatalf("readUint24()=%#x, want 0x030201", got)
	}

	if got := r.readUint32(); got != 0x12345678 {
		t.Fatalf("readUint32()=%#x, want 0x12345678", got)
	}

	if got := r.readFloat32(); got != 1.0 {
		t.Fatalf("readFloat32()=%v, want 1", got)
	}

	if err := r.Err(); err != nil {
		t.Fatalf("unexpected reader error: %v", err)
	}

	if r.pos() != len(data) {
		t.Fatalf("pos()=%d, want %d", r.pos(), len(data))
	}
}

func TestByteReaderReadPastEnd(t *testing.T) {
	r := newByteReader([]byte{0x01, 0x02})

	if got := r.readUint32(); got != 0 {
		t.Fatalf("failed read returned %#x, want 0", got)
	}

	err := r.Err()
	if err == nil {
		t.Fatal("expected error after reading past the end")
	}

	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Fatalf("error=%v, want ErrUnexpectedEnd", err)
	}

	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("error %T is not a *FormatError", err)
	}
}

func TestByteReaderErrIsSticky(t *testing.T) {
	r := newByteReader([]byte{0x01})

	r.readUint32() // fails
	first := r.Err()

	r.seek(0)
	r.readByte()

	if r.Err() != first {
		t.Fatalf("error after failure changed: %v != %v", r.Err(), first)
	}

	if r.pos() != 0 {
		t.Fatalf("reader advanced after failure: pos=%d", r.pos())
	}
}

func TestByteReaderSeek(t *testing.T) {
	tests := []struct {
		name    string
		offset  int
		wantErr bool
	}{
		{"start", 0, false},
		{"inside", 3, false},
		{"last byte", 7, false},
		{"end is outside", 8, true},
		{"past end", 100, true},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newByteReader(make([]byte, 8))
			r.seek(tt.offset)

			if (r.Err() != nil) != tt.wantErr {
				t.Fatalf("seek(%d) err=%v, wantErr=%v", tt.offset, r.Err(), tt.wantErr)
			}

			if !tt.wantErr && r.pos() != tt.offset {
				t.Fatalf("pos()=%d, want %d", r.pos(), tt.offset)
			}
		})
	}
}

func TestByteReaderTakeToExactEnd(t *testing.T) {
	r := newByteReader([]byte{0x0A, 0x0B})

	r.skip(2)

	if err := r.Err(); err != nil {
		t.Fatalf("skipping to the exact end failed: %v", err)
	}
}

func TestByteReaderFixedString(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		size int
		want string
	}{
		{"padded", []byte{'a', 'b', 0, 0}, 4, "ab"},
		{"full width", []byte{'a', 'b', 'c', 'd'}, 4, "abcd"},
		{"embedded junk after nul", []byte{'a', 0, 'x', 'y'}, 4, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newByteReader(tt.data)

			if got := r.readFixedString(tt.size); got != tt.want {
				t.Fatalf("readFixedString(%d)=%q, want %q", tt.size, got, tt.want)
			}
		})
	}
}

func TestByteReaderCString(t *testing.T) {
	r := newByteReader([]byte{'h', 'i', 0, 'x'})

	if got := r.readCString(); got != "hi" {
		t.Fatalf("readCString()=%q, want %q", got, "hi")
	}

	if r.pos() != 3 {
		t.Fatalf("pos()=%d, want 3", r.pos())
	}
}

func TestByteReaderCStringUnterminated(t *testing.T) {
	r := newByteReader([]byte{'h', 'i'})

	if got := r.readCString(); got != "" {
		t.Fatalf("readCString()=%q, want empty", got)
	}

	if !errors.Is(r.Err(), ErrUnexpectedEnd) {
		t.Fatalf("error=%v, want ErrUnexpectedEnd", r.Err())
	}
}
