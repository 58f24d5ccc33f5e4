package nbt

// Tag is a decoded value in a tag tree. The concrete types behind it are
// exactly the thirteen defined by the format: End, the six numeric scalars,
// String, the three arrays, List, and Compound.
//
// Decoded trees are immutable and self-contained: no tag aliases the input
// buffer it was decoded from, and a tree may be shared across goroutines
// without synchronization.
type Tag interface {
	// Type returns the tag's type code.
	Type() TagType

	// String renders the tag in stringified form, the compact textual
	// notation used for display and debugging.
	String() string
}

// End is the compound terminator. It carries no payload and appears in a
// decoded tree only when a buffer's top-level tag is a bare end marker, or as
// the element type of an empty list.
type End struct{}

// Byte is a signed 8-bit integer tag.
type Byte int8

// Short is a signed 16-bit integer tag.
type Short int16

// Int is a signed 32-bit integer tag.
type Int int32

// Long is a signed 64-bit integer tag.
type Long int64

// Float is a 32-bit IEEE-754 floating point tag.
type Float float32

// Double is a 64-bit IEEE-754 floating point tag.
type Double float64

// String is a string tag. The bytes are carried through exactly as stored;
// names and values using Java's modified UTF-8 are preserved rather than
// transcoded.
type String string

// ByteArray is a raw byte sequence tag.
type ByteArray []byte

// IntArray is a signed 32-bit integer sequence tag.
type IntArray []int32

// LongArray is a signed 64-bit integer sequence tag.
type LongArray []int64

func (End) Type() TagType       { return TypeEnd }
func (Byte) Type() TagType      { return TypeByte }
func (Short) Type() TagType     { return TypeShort }
func (Int) Type() TagType       { return TypeInt }
func (Long) Type() TagType      { return TypeLong }
func (Float) Type() TagType     { return TypeFloat }
func (Double) Type() TagType    { return TypeDouble }
func (ByteArray) Type() TagType { return TypeByteArray }
func (String) Type() TagType    { return TypeString }
func (IntArray) Type() TagType  { return TypeIntArray }
func (LongArray) Type() TagType { return TypeLongArray }
