package nbt

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/tilecraft/anvil/errs"
)

// Reader is a bounds-checked cursor over a byte slice, reading the
// fixed-width big-endian primitives the tag format is built from.
//
// Every read either consumes exactly the requested bytes or fails with an
// error wrapping errs.ErrUnexpectedEOF; the cursor never moves backward and
// never past the end of the input. After an error the cursor position is
// unspecified, the owning decode aborts as a whole.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current offset from the start of the input.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// ReadBytes consumes the next n bytes and returns them as a slice of the
// underlying input, without copying. Callers that retain the result beyond
// the lifetime of the input must copy it themselves.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, fmt.Errorf("need %d bytes at offset %d, have %d: %w", n, r.pos, r.Remaining(), errs.ErrUnexpectedEOF)
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// ReadUint8 consumes one byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if r.Remaining() < 1 {
		return 0, fmt.Errorf("need 1 byte at offset %d: %w", r.pos, errs.ErrUnexpectedEOF)
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// ReadUint16 consumes two bytes as a big-endian unsigned integer.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(b), nil
}

// ReadUint32 consumes four bytes as a big-endian unsigned integer.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(b), nil
}

// ReadUint64 consumes eight bytes as a big-endian unsigned integer.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint64(b), nil
}

// ReadFloat32 consumes four bytes as a big-endian IEEE-754 single.
func (r *Reader) ReadFloat32() (float32, error) {
	bits, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(bits), nil
}

// ReadFloat64 consumes eight bytes as a big-endian IEEE-754 double.
func (r *Reader) ReadFloat64() (float64, error) {
	bits, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}
