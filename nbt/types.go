package nbt

// TagType identifies the payload layout of a tag. The wire values are fixed
// by the format; anything outside the defined range is rejected during
// decoding.
type TagType uint8

const (
	TypeEnd       TagType = 0x00 // TypeEnd terminates a compound and has no payload.
	TypeByte      TagType = 0x01 // TypeByte is a signed 8-bit integer.
	TypeShort     TagType = 0x02 // TypeShort is a signed big-endian 16-bit integer.
	TypeInt       TagType = 0x03 // TypeInt is a signed big-endian 32-bit integer.
	TypeLong      TagType = 0x04 // TypeLong is a signed big-endian 64-bit integer.
	TypeFloat     TagType = 0x05 // TypeFloat is a big-endian IEEE-754 single.
	TypeDouble    TagType = 0x06 // TypeDouble is a big-endian IEEE-754 double.
	TypeByteArray TagType = 0x07 // TypeByteArray is a length-prefixed byte sequence.
	TypeString    TagType = 0x08 // TypeString is a length-prefixed UTF-8 string.
	TypeList      TagType = 0x09 // TypeList is a homogeneous sequence of payloads.
	TypeCompound  TagType = 0x0A // TypeCompound is a named set of nested tags.
	TypeIntArray  TagType = 0x0B // TypeIntArray is a length-prefixed int32 sequence.
	TypeLongArray TagType = 0x0C // TypeLongArray is a length-prefixed int64 sequence.
)

func (t TagType) String() string {
	switch t {
	case TypeEnd:
		return "End"
	case TypeByte:
		return "Byte"
	case TypeShort:
		return "Short"
	case TypeInt:
		return "Int"
	case TypeLong:
		return "Long"
	case TypeFloat:
		return "Float"
	case TypeDouble:
		return "Double"
	case TypeByteArray:
		return "ByteArray"
	case TypeString:
		return "String"
	case TypeList:
		return "List"
	case TypeCompound:
		return "Compound"
	case TypeIntArray:
		return "IntArray"
	case TypeLongArray:
		return "LongArray"
	default:
		return "Unknown"
	}
}

// valid reports whether t is one of the defined type codes.
func (t TagType) valid() bool {
	return t <= TypeLongArray
}

// minPayloadSize returns the smallest number of bytes a payload of type t can
// occupy. Element counts are checked against it before any allocation, so a
// hostile count always fails as a short read instead of reserving memory.
func minPayloadSize(t TagType) int {
	switch t {
	case TypeByte:
		return 1
	case TypeShort:
		return 2
	case TypeInt, TypeFloat:
		return 4
	case TypeLong, TypeDouble:
		return 8
	case TypeByteArray, TypeIntArray, TypeLongArray:
		return 4 // element count
	case TypeString:
		return 2 // length prefix
	case TypeList:
		return 5 // element type plus count
	case TypeCompound:
		return 1 // terminator
	default:
		return 0
	}
}
