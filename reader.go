package xsb

import (
	"encoding/binary"
	"math"
)

// byteReader is the bounds-checked seek+read primitive shared by every
// table loader. The first out-of-range access latches a *FormatError;
// later reads return zero values without advancing, so a failed decode
// cannot wander through unrelated parts of the buffer. Err must be
// checked before any value read through the reader is acted on.
type byteReader struct {
	data []byte
	off  int
	err  *FormatError
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data}
}

// Err returns the first out-of-range access, if any.
func (r *byteReader) Err() error {
	if r.err == nil {
		return nil
	}

	return r.err
}

func (r *byteReader) fail(offset int, format string, args ...any) {
	if r.err == nil {
		r.err = formatErrorf(offset, ErrUnexpectedEnd, format, args...)
	}
}

func (r *byteReader) pos() int { return r.off }

func (r *byteReader) size() int { return len(r.data) }

// seek moves the cursor to an absolute offset, which must lie strictly
// inside the buffer.
func (r *byteReader) seek(offset int) {
	if r.err != nil {
		return
	}

	if offset < 0 || offset >= len(r.data) {
		r.fail(offset, "offset %d outside sound bank of %d bytes", offset, len(r.data))

		return
	}

	r.off = offset
}

// take consumes the next n bytes. Consuming up to the exact end of the
// buffer is allowed; going past it latches an error.
func (r *byteReader) take(n int) []byte {
	if r.err != nil {
		return nil
	}

	if n < 0 || r.off+n > len(r.data) {
		r.fail(r.off, "cannot read %d bytes at offset %d of %d", n, r.off, len(r.data))

		return nil
	}

	b := r.data[r.off : r.off+n]
	r.off += n

	return b
}

func (r *byteReader) skip(n int) {
	r.take(n)
}

func (r *byteReader) readByte() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}

	return b[0]
}

func (r *byteReader) readInt8() int8 {
	return int8(r.readByte())
}

func (r *byteReader) readUint16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}

	return binary.LittleEndian.Uint16(b)
}

func (r *byteReader) readInt16() int16 {
	return int16(r.readUint16())
}

// readUint24 reads a 3-byte little-endian unsigned integer.
func (r *byteReader) readUint24() uint32 {
	b := r.take(3)
	if b == nil {
		return 0
	}

	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

func (r *byteReader) readUint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}

	return binary.LittleEndian.Uint32(b)
}

func (r *byteReader) readFloat32() float32 {
	return math.Float32frombits(r.readUint32())
}

// readTag reads a 4-byte ASCII tag, compared as raw big-endian bytes.
func (r *byteReader) readTag() [4]byte {
	var tag [4]byte

	b := r.take(4)
	if b != nil {
		copy(tag[:], b)
	}

	return tag
}

// readFixedString reads a fixed-width ASCII field, trimming at the first
// NUL byte.
func (r *byteReader) readFixedString(size int) string {
	b := r.take(size)
	if b == nil {
		return ""
	}

	return nullTermStr(b)
}

// readCString reads a NUL-terminated ASCII string. A missing terminator
// is an out-of-range read, not a silent truncation.
func (r *byteReader) readCString() string {
	if r.err != nil {
		return ""
	}

	for end := r.off; end < len(r.data); end++ {
		if r.data[end] == 0 {
			s := string(r.data[r.off:end])
			r.off = end + 1

			return s
		}
	}

	r.fail(r.off, "unterminated string at offset %d", r.off)

	return ""
}

func nullTermStr(b []byte) string {
	return string(b[:clen(b)])
}

func clen(b []byte) int {
	for i := range b {
		if b[i] == 0 {
			return i
		}
	}

	return len(b)
}
