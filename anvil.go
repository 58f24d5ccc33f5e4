// Package anvil reads Minecraft world data: the NBT binary format and the
// Anvil region files that store chunks of it on disk.
//
// NBT (Named Binary Tag) is the serialization format for nearly everything a
// Minecraft world persists, from level metadata to chunk contents. This
// package decodes NBT buffers into an immutable in-memory tag tree and opens
// region files for chunk access, handling the compression layers in between.
//
// # Core Features
//
//   - Full NBT decoder for all thirteen tag types with strict bounds and
//     nesting-depth validation, safe on untrusted input
//   - Immutable tag tree with typed accessors and iterator support
//   - Gzip, zlib, LZ4 and uncompressed chunk payloads
//   - Region file access with header validation, sidecar (.mcc) resolution
//     and per-chunk content fingerprints
//   - Stringified (SNBT) rendering for debugging and tooling
//
// # Basic Usage
//
// Decoding a raw NBT buffer:
//
//	import "github.com/tilecraft/anvil"
//
//	name, tag, err := anvil.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	root := tag.(*nbt.Compound)
//	if level, ok := nbt.Get[*nbt.Compound](root, "Data"); ok {
//	    fmt.Println(level.String())
//	}
//
// Reading a compressed NBT file such as level.dat:
//
//	name, tag, err := anvil.ReadFile("world/level.dat")
//
// Iterating the chunks of a region file:
//
//	f, err := anvil.OpenRegion("world/region/r.0.0.mca")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	err = f.ForEach(func(c *region.Chunk) error {
//	    _, tag, err := anvil.Decode(c.Data)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Printf("chunk (%d, %d): %s\n", c.X, c.Z, tag.String())
//	    return nil
//	})
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the nbt,
// region and compress packages, simplifying the most common use cases. For
// fine-grained control, such as decoder depth limits or direct codec
// access, use those packages directly.
package anvil

import (
	"os"

	"github.com/tilecraft/anvil/compress"
	"github.com/tilecraft/anvil/nbt"
	"github.com/tilecraft/anvil/region"
)

// Decode decodes a single named NBT tag from an uncompressed buffer.
//
// This is a thin wrapper around nbt.Decode with the default decoder
// settings. Use nbt.NewDecoder directly to configure the nesting-depth
// limit.
//
// Parameters:
//   - data: Uncompressed NBT buffer
//
// Returns:
//   - string: Name of the root tag, usually empty
//   - nbt.Tag: Decoded tag tree
//   - error: Decoding error for truncated or malformed input
func Decode(data []byte) (string, nbt.Tag, error) {
	return nbt.Decode(data)
}

// ReadFile reads and decodes an NBT file, transparently decompressing it.
//
// Minecraft writes most standalone NBT files (level.dat and friends)
// gzip-compressed, some tools emit zlib, and a few files are raw NBT.
// ReadFile sniffs the leading bytes to pick the right treatment.
//
// Parameters:
//   - path: NBT file path
//
// Returns:
//   - string: Name of the root tag, usually empty
//   - nbt.Tag: Decoded tag tree
//   - error: I/O, decompression or decoding error
//
// Example:
//
//	name, tag, err := anvil.ReadFile("world/level.dat")
//	if err != nil {
//	    log.Fatal(err)
//	}
func ReadFile(path string) (string, nbt.Tag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	if scheme, ok := sniffScheme(data); ok {
		codec, err := compress.ForScheme(scheme)
		if err != nil {
			return "", nil, err
		}

		data, err = codec.Decompress(data)
		if err != nil {
			return "", nil, err
		}
	}

	return nbt.Decode(data)
}

// OpenRegion opens the Anvil region file at path.
//
// The caller must Close the returned File. See the region package for
// chunk access and iteration.
//
// Parameters:
//   - path: Region file path, canonically named r.<rx>.<rz>.mca
//
// Returns:
//   - *region.File: Region file with validated header tables
//   - error: I/O or header validation error
func OpenRegion(path string) (*region.File, error) {
	return region.Open(path)
}

// sniffScheme detects a gzip or zlib stream from its leading bytes. Raw NBT
// starts with a tag type byte (almost always 0x0a, a compound), which
// matches neither signature.
func sniffScheme(data []byte) (compress.Scheme, bool) {
	if len(data) < 2 {
		return 0, false
	}

	if data[0] == 0x1f && data[1] == 0x8b {
		return compress.SchemeGzip, true
	}

	// Zlib: deflate method bits plus a header checksum divisible by 31.
	cmf, flg := data[0], data[1]
	if cmf&0x0f == 8 && cmf>>4 <= 7 && (uint32(cmf)<<8|uint32(flg))%31 == 0 {
		return compress.SchemeZlib, true
	}

	return 0, false
}
