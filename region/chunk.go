package region

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/tilecraft/anvil/compress"
	"github.com/tilecraft/anvil/errs"
	"github.com/tilecraft/anvil/internal/pool"
)

// Chunk is one chunk payload read from a region file, decompressed and
// ready for NBT decoding.
type Chunk struct {
	// X and Z are the region-local chunk coordinates in [0, ChunksPerAxis).
	X int
	Z int

	// Scheme is the compression scheme the payload was stored with.
	Scheme compress.Scheme

	// External reports that the payload was loaded from a sidecar .mcc
	// file rather than the region file itself.
	External bool

	// Sectors is the number of sectors the chunk claims in the region
	// file.
	Sectors int

	// Timestamp is the recorded save time, or the zero time.Time when the
	// timestamps table holds no entry for this chunk.
	Timestamp time.Time

	// Fingerprint is the xxHash64 digest of the compressed payload. Two
	// chunks with equal fingerprints stored identical bytes, which makes
	// the digest a cheap cache key for derived data such as rendered map
	// tiles.
	Fingerprint uint64

	// Data is the decompressed payload, owned by the Chunk.
	Data []byte
}

// Chunk reads, decompresses and fingerprints the chunk at the given
// region-local coordinates. It panics if x or z is outside
// [0, ChunksPerAxis).
//
// Parameters:
//   - x: Region-local chunk X coordinate
//   - z: Region-local chunk Z coordinate
//
// Returns:
//   - *Chunk: Decompressed chunk payload with metadata
//   - error: errs.ErrChunkNotFound for an absent chunk,
//     errs.ErrInvalidChunkLength for a payload that does not fit its
//     claimed sectors, errs.ErrExternalChunk when a sidecar cannot be
//     resolved, or codec errors from the compress package
func (f *File) Chunk(x, z int) (*Chunk, error) {
	return f.readChunk(chunkIndex(x, z))
}

// ForEach calls fn for every present chunk in ascending sector order, the
// order the payloads are laid out in the file. It stops at the first error
// from a chunk read or from fn and returns it.
func (f *File) ForEach(fn func(*Chunk) error) error {
	for _, i := range f.order {
		chunk, err := f.readChunk(i)
		if err != nil {
			return err
		}

		if err := fn(chunk); err != nil {
			return err
		}
	}

	return nil
}

func (f *File) readChunk(i int) (*Chunk, error) {
	x, z := chunkCoords(i)

	loc := f.locations[i]
	if loc.offset == 0 {
		return nil, fmt.Errorf("chunk (%d, %d): %w", x, z, errs.ErrChunkNotFound)
	}

	base := int64(loc.offset) * SectorSize

	var head [chunkHeaderSize]byte
	if _, err := f.r.ReadAt(head[:], base); err != nil {
		return nil, fmt.Errorf("chunk (%d, %d) header: %w", x, z, err)
	}

	length := binary.BigEndian.Uint32(head[0:4])
	switch {
	case length == 0:
		return nil, fmt.Errorf("chunk (%d, %d) has an empty payload: %w",
			x, z, errs.ErrInvalidChunkLength)
	case int64(length)+4 > int64(loc.count)*SectorSize:
		return nil, fmt.Errorf("chunk (%d, %d) payload of %d bytes exceeds its %d claimed sectors: %w",
			x, z, length, loc.count, errs.ErrInvalidChunkLength)
	}

	raw := head[4]
	chunk := &Chunk{
		X:         x,
		Z:         z,
		Scheme:    compress.Scheme(raw &^ externalSchemeBit),
		External:  raw&externalSchemeBit != 0,
		Sectors:   int(loc.count),
		Timestamp: f.Timestamp(x, z),
	}

	if chunk.External {
		payload, err := f.readSidecar(x, z)
		if err != nil {
			return nil, err
		}

		return f.finishChunk(chunk, payload)
	}

	bb := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(bb)

	bb.ExtendOrGrow(int(length) - 1)
	if _, err := f.r.ReadAt(bb.Bytes(), base+chunkHeaderSize); err != nil {
		return nil, fmt.Errorf("chunk (%d, %d) payload: %w", x, z, err)
	}

	return f.finishChunk(chunk, bb.Bytes())
}

// readSidecar loads the payload of an externally stored chunk from its
// c.<cx>.<cz>.mcc file, named by absolute chunk coordinates.
func (f *File) readSidecar(x, z int) ([]byte, error) {
	if !f.hasCoords {
		return nil, fmt.Errorf("chunk (%d, %d): %w", x, z, errs.ErrExternalChunk)
	}

	name := fmt.Sprintf("c.%d.%d.mcc", f.regionX*ChunksPerAxis+x, f.regionZ*ChunksPerAxis+z)
	payload, err := os.ReadFile(filepath.Join(f.dir, name))
	if err != nil {
		return nil, fmt.Errorf("chunk (%d, %d) external payload: %w", x, z, err)
	}

	return payload, nil
}

// finishChunk fingerprints the compressed payload and decompresses it into
// freshly allocated memory owned by the chunk.
func (f *File) finishChunk(chunk *Chunk, compressed []byte) (*Chunk, error) {
	chunk.Fingerprint = xxhash.Sum64(compressed)

	codec, err := compress.ForScheme(chunk.Scheme)
	if err != nil {
		return nil, fmt.Errorf("chunk (%d, %d): %w", chunk.X, chunk.Z, err)
	}

	data, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("chunk (%d, %d): %w", chunk.X, chunk.Z, err)
	}

	// NoneCodec aliases its input, which may be a pooled staging buffer.
	if chunk.Scheme == compress.SchemeNone {
		data = bytes.Clone(data)
	}
	chunk.Data = data

	return chunk, nil
}
