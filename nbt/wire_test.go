package nbt

import (
	"encoding/binary"
	"math"
)

// Helpers for composing wire-format buffers in tests. The package has no
// encoder of its own, so tests build their inputs here; encodeNamed walks a
// tag tree and emits the exact bytes the decoder consumes.

func appendU16(b []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(b, v)
}

func appendU32(b []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(b, v)
}

func appendU64(b []byte, v uint64) []byte {
	return binary.BigEndian.AppendUint64(b, v)
}

func appendWireString(b []byte, s string) []byte {
	b = appendU16(b, uint16(len(s)))
	return append(b, s...)
}

// encodeNamed emits a complete named tag: type code, name, payload.
func encodeNamed(name string, tag Tag) []byte {
	b := []byte{byte(tag.Type())}
	b = appendWireString(b, name)

	return appendPayload(b, tag)
}

// appendPayload emits just the payload of tag.
func appendPayload(b []byte, tag Tag) []byte {
	switch v := tag.(type) {
	case End:
		return b
	case Byte:
		return append(b, byte(v))
	case Short:
		return appendU16(b, uint16(v))
	case Int:
		return appendU32(b, uint32(v))
	case Long:
		return appendU64(b, uint64(v))
	case Float:
		return appendU32(b, math.Float32bits(float32(v)))
	case Double:
		return appendU64(b, math.Float64bits(float64(v)))
	case String:
		return appendWireString(b, string(v))
	case ByteArray:
		b = appendU32(b, uint32(len(v)))
		return append(b, v...)
	case IntArray:
		b = appendU32(b, uint32(len(v)))
		for _, n := range v {
			b = appendU32(b, uint32(n))
		}

		return b
	case LongArray:
		b = appendU32(b, uint32(len(v)))
		for _, n := range v {
			b = appendU64(b, uint64(n))
		}

		return b
	case *List:
		b = append(b, byte(v.Subtype()))
		b = appendU32(b, uint32(v.Len()))
		for _, item := range v.All() {
			b = appendPayload(b, item)
		}

		return b
	case *Compound:
		for name, item := range v.All() {
			b = append(b, byte(item.Type()))
			b = appendWireString(b, name)
			b = appendPayload(b, item)
		}

		return append(b, byte(TypeEnd))
	default:
		panic("unhandled tag type")
	}
}

// makeList builds a List literal for expectations. The decoder always
// produces a non-nil element slice, so an empty makeList matches one.
func makeList(elem TagType, items ...Tag) *List {
	if items == nil {
		items = []Tag{}
	}

	return &List{elem: elem, items: items}
}

// makeCompound builds a Compound literal for expectations, inserting entries
// in order.
func makeCompound(entries ...compoundEntry) *Compound {
	c := newCompound()
	for _, e := range entries {
		c.set(e.name, e.tag)
	}

	return c
}
