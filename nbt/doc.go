// Package nbt decodes the binary named-tag format used by Minecraft world
// data into an immutable in-memory tag tree.
//
// The format is a self-describing tree: every value is introduced by a
// one-byte type code, multi-byte integers are big-endian, strings carry a
// 16-bit byte length, arrays and lists carry a 32-bit element count, and
// compounds are name/tag sequences terminated by an end marker. This package
// implements the read side only; it never writes the format back.
//
// # Type System
//
// The thirteen tag types map onto concrete Go types implementing the Tag
// interface:
//
//	End                   nbt.End        (terminator, no payload)
//	Byte/Short/Int/Long   nbt.Byte, nbt.Short, nbt.Int, nbt.Long
//	Float/Double          nbt.Float, nbt.Double
//	ByteArray             nbt.ByteArray  ([]byte)
//	String                nbt.String
//	List                  *nbt.List      (homogeneous, typed elements)
//	Compound              *nbt.Compound  (ordered name→tag map)
//	IntArray/LongArray    nbt.IntArray, nbt.LongArray
//
// Type codes outside this set fail decoding; they are never coerced or
// skipped.
//
// # Basic Usage
//
// Decoding a buffer and walking the result:
//
//	name, tag, err := nbt.Decode(data)
//	if err != nil {
//	    return err
//	}
//
//	root, ok := tag.(*nbt.Compound)
//	if !ok {
//	    return fmt.Errorf("unexpected top-level %s tag", tag.Type())
//	}
//
//	version, ok := nbt.Get[nbt.Int](root, "DataVersion")
//
// Iterating containers with range-over-func:
//
//	for name, tag := range root.All() {
//	    fmt.Printf("%s: %s\n", name, tag)
//	}
//
// # Hostile Input
//
// The decoder is meant to be safe on arbitrary bytes:
//
//   - Every read is bounds-checked; truncation fails with
//     errs.ErrUnexpectedEOF rather than panicking.
//   - Array and list counts are validated against the remaining input before
//     allocation, so a crafted count cannot reserve memory the input could
//     never fill.
//   - Nesting is capped (DefaultMaxDepth, adjustable via WithMaxDepth) and
//     overflow reports errs.ErrDepthExceeded.
//   - A list that declares the end type with a non-zero count is rejected as
//     errs.ErrMalformedList.
//
// The first error aborts the decode; there is no resynchronization.
//
// # Ownership
//
// Decoded trees copy every string and array out of the input buffer. The
// input is only borrowed during Decode, and the resulting tree is immutable
// and safe to share across goroutines.
package nbt
