package nbt

import (
	"encoding/binary"
	"fmt"

	"github.com/tilecraft/anvil/errs"
	"github.com/tilecraft/anvil/internal/options"
)

// DefaultMaxDepth is the nesting limit applied when no WithMaxDepth option is
// given. Well-formed world data nests a handful of levels; the default only
// exists to stop crafted inputs from exhausting the stack.
const DefaultMaxDepth = 512

// Decoder reads one named tag tree from a byte slice.
//
// Note: The Decoder is NOT reusable. After calling Decode, a new decoder must
// be created to decode further buffers.
type Decoder struct {
	r        *Reader
	maxDepth int
}

// DecoderOption represents a functional option for configuring the Decoder.
type DecoderOption = options.Option[*Decoder]

// WithMaxDepth overrides the nesting limit for lists and compounds.
// The limit counts every container on the path from the root, the root
// included. It must be positive.
func WithMaxDepth(n int) DecoderOption {
	return options.New(func(d *Decoder) error {
		if n <= 0 {
			return fmt.Errorf("max depth %d: %w", n, errs.ErrInvalidOption)
		}
		d.maxDepth = n

		return nil
	})
}

// NewDecoder creates a Decoder over data.
//
// The decoder borrows data only until Decode returns; the decoded tree holds
// copies of everything it needs, so the caller may reuse the buffer
// afterwards.
//
// Parameters:
//   - data: Raw uncompressed tag bytes
//   - opts: Optional configuration (see WithMaxDepth)
//
// Returns:
//   - *Decoder: New decoder instance ready for a single Decode call
//   - error: Invalid option error
func NewDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{
		r:        NewReader(data),
		maxDepth: DefaultMaxDepth,
	}

	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Decode reads the input's top-level named tag and returns its name and
// decoded payload.
//
// A top-level end marker yields an empty name and the End sentinel. Bytes
// after a complete top-level tag are ignored; framing is the container's
// concern.
//
// Returns:
//   - string: The top-level tag's name
//   - Tag: The decoded tag tree
//   - error: An error wrapping one of the errs sentinels, positioned at the
//     offending offset
func (d *Decoder) Decode() (string, Tag, error) {
	return d.readNamedTag(0)
}

// Decode reads the top-level named tag from data using default settings.
func Decode(data []byte) (string, Tag, error) {
	d, err := NewDecoder(data)
	if err != nil {
		return "", nil, err
	}

	return d.Decode()
}

// readNamedTag reads a type code, a name, and a payload. An end marker
// short-circuits: it has neither name nor payload.
func (d *Decoder) readNamedTag(depth int) (string, Tag, error) {
	kind, err := d.readTagType()
	if err != nil {
		return "", nil, err
	}

	if kind == TypeEnd {
		return "", End{}, nil
	}

	name, err := d.readString()
	if err != nil {
		return "", nil, fmt.Errorf("%s tag name: %w", kind, err)
	}

	tag, err := d.decodeTag(kind, depth)
	if err != nil {
		return "", nil, err
	}

	return name, tag, nil
}

// readTagType reads and validates one type code.
func (d *Decoder) readTagType() (TagType, error) {
	off := d.r.Pos()

	b, err := d.r.ReadUint8()
	if err != nil {
		return 0, err
	}

	t := TagType(b)
	if !t.valid() {
		return 0, fmt.Errorf("type code %d at offset %d: %w", b, off, errs.ErrUnknownTagType)
	}

	return t, nil
}

// readString reads a length-prefixed string and copies it out of the input.
func (d *Decoder) readString() (string, error) {
	n, err := d.r.ReadUint16()
	if err != nil {
		return "", err
	}

	raw, err := d.r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

// decodeTag decodes one payload of the given type. depth is the number of
// containers already open above this payload.
func (d *Decoder) decodeTag(kind TagType, depth int) (Tag, error) {
	switch kind {
	case TypeEnd:
		return End{}, nil
	case TypeByte:
		v, err := d.r.ReadUint8()
		if err != nil {
			return nil, err
		}

		return Byte(v), nil
	case TypeShort:
		v, err := d.r.ReadUint16()
		if err != nil {
			return nil, err
		}

		return Short(v), nil
	case TypeInt:
		v, err := d.r.ReadUint32()
		if err != nil {
			return nil, err
		}

		return Int(v), nil
	case TypeLong:
		v, err := d.r.ReadUint64()
		if err != nil {
			return nil, err
		}

		return Long(v), nil
	case TypeFloat:
		v, err := d.r.ReadFloat32()
		if err != nil {
			return nil, err
		}

		return Float(v), nil
	case TypeDouble:
		v, err := d.r.ReadFloat64()
		if err != nil {
			return nil, err
		}

		return Double(v), nil
	case TypeByteArray:
		return d.decodeByteArray()
	case TypeString:
		s, err := d.readString()
		if err != nil {
			return nil, err
		}

		return String(s), nil
	case TypeList:
		return d.decodeList(depth)
	case TypeCompound:
		return d.decodeCompound(depth)
	case TypeIntArray:
		return d.decodeIntArray()
	case TypeLongArray:
		return d.decodeLongArray()
	default:
		// readTagType validates codes before dispatch.
		return nil, fmt.Errorf("type code %d: %w", uint8(kind), errs.ErrUnknownTagType)
	}
}

// readCount reads an element count and verifies that count elements of at
// least elemSize bytes each can still fit in the remaining input. The check
// runs in 64-bit space so oversized counts cannot wrap, and it rejects the
// count before anything is allocated for it.
func (d *Decoder) readCount(elemSize int) (int, error) {
	off := d.r.Pos()

	count, err := d.r.ReadUint32()
	if err != nil {
		return 0, err
	}

	if int64(count)*int64(elemSize) > int64(d.r.Remaining()) {
		return 0, fmt.Errorf("count %d at offset %d exceeds %d remaining bytes: %w",
			count, off, d.r.Remaining(), errs.ErrUnexpectedEOF)
	}

	return int(count), nil
}

func (d *Decoder) decodeByteArray() (Tag, error) {
	n, err := d.readCount(1)
	if err != nil {
		return nil, err
	}

	raw, err := d.r.ReadBytes(n)
	if err != nil {
		return nil, err
	}

	out := make(ByteArray, n)
	copy(out, raw)

	return out, nil
}

func (d *Decoder) decodeIntArray() (Tag, error) {
	n, err := d.readCount(4)
	if err != nil {
		return nil, err
	}

	raw, err := d.r.ReadBytes(n * 4)
	if err != nil {
		return nil, err
	}

	out := make(IntArray, n)
	for i := range out {
		out[i] = int32(binary.BigEndian.Uint32(raw[i*4:]))
	}

	return out, nil
}

func (d *Decoder) decodeLongArray() (Tag, error) {
	n, err := d.readCount(8)
	if err != nil {
		return nil, err
	}

	raw, err := d.r.ReadBytes(n * 8)
	if err != nil {
		return nil, err
	}

	out := make(LongArray, n)
	for i := range out {
		out[i] = int64(binary.BigEndian.Uint64(raw[i*8:]))
	}

	return out, nil
}

func (d *Decoder) decodeList(depth int) (Tag, error) {
	if depth >= d.maxDepth {
		return nil, fmt.Errorf("list at offset %d, depth %d: %w", d.r.Pos(), depth, errs.ErrDepthExceeded)
	}

	elem, err := d.readTagType()
	if err != nil {
		return nil, fmt.Errorf("list element type: %w", err)
	}

	countOff := d.r.Pos()

	count, err := d.readCount(minPayloadSize(elem))
	if err != nil {
		return nil, err
	}

	// An end-typed list can only be empty. Elements of that type would
	// consume no input, so a non-zero count describes nothing and is how
	// crafted buffers request absurd allocations.
	if elem == TypeEnd && count > 0 {
		return nil, fmt.Errorf("%d elements of type End at offset %d: %w", count, countOff, errs.ErrMalformedList)
	}

	items := make([]Tag, 0, count)
	for i := 0; i < count; i++ {
		item, err := d.decodeTag(elem, depth+1)
		if err != nil {
			return nil, fmt.Errorf("list element %d: %w", i, err)
		}
		items = append(items, item)
	}

	return &List{elem: elem, items: items}, nil
}

func (d *Decoder) decodeCompound(depth int) (Tag, error) {
	if depth >= d.maxDepth {
		return nil, fmt.Errorf("compound at offset %d, depth %d: %w", d.r.Pos(), depth, errs.ErrDepthExceeded)
	}

	c := newCompound()
	for {
		kind, err := d.readTagType()
		if err != nil {
			return nil, err
		}

		if kind == TypeEnd {
			return c, nil
		}

		name, err := d.readString()
		if err != nil {
			return nil, fmt.Errorf("%s tag name: %w", kind, err)
		}

		tag, err := d.decodeTag(kind, depth+1)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", name, err)
		}

		c.set(name, tag)
	}
}
