// Package region reads Anvil region files, the sector-based container
// format Minecraft uses to store the chunks of a world on disk.
//
// A region file (r.<rx>.<rz>.mca) covers a 32x32 grid of chunks and is
// divided into 4096-byte sectors. The package validates the header tables
// eagerly, then serves individual chunk payloads on demand: located, read,
// decompressed and fingerprinted per call. It is deliberately NBT-agnostic;
// pair it with the nbt package to decode the payloads it returns.
//
// # File Structure
//
// Every region file starts with two fixed header sectors followed by the
// chunk payloads:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Sector 0: Locations table (1024 × 4 bytes)              │
//	│  - 3 bytes: first claimed sector, big-endian            │
//	│  - 1 byte:  claimed sector count                        │
//	│  - all-zero entry: chunk absent                         │
//	├─────────────────────────────────────────────────────────┤
//	│ Sector 1: Timestamps table (1024 × 4 bytes)             │
//	│  - big-endian seconds since the Unix epoch              │
//	├─────────────────────────────────────────────────────────┤
//	│ Sectors 2..n: Chunk payloads, one chunk per run of      │
//	│ sectors, padded to sector boundaries:                   │
//	│  - 4 bytes: payload length, big-endian                  │
//	│  - 1 byte:  compression scheme                          │
//	│  - length-1 bytes: compressed chunk data                │
//	└─────────────────────────────────────────────────────────┘
//
// Both tables index chunks as z*32 + x with region-local coordinates.
// The payload length counts the scheme byte, so the compressed data is
// length-1 bytes.
//
// # Compression Schemes
//
// The scheme byte selects the codec for the chunk data; the compress
// package maps it to an implementation:
//
//	Scheme | Codec
//	-------|---------------------------
//	1      | Gzip (legacy worlds)
//	2      | Zlib (the common case)
//	3      | Uncompressed
//	4      | LZ4 block stream
//	127    | Custom (not supported)
//
// Bit 0x80 of the scheme byte marks an externally stored chunk: the
// payload lives in a sibling c.<cx>.<cz>.mcc file (absolute chunk
// coordinates) and the low 7 bits name its compression. Sidecar files can
// only be resolved when the region was opened with Open, which derives
// the region coordinates from the file name; NewReader has no directory
// context and reports errs.ErrExternalChunk instead.
//
// # Validation
//
// Construction fails with errs.ErrInvalidRegionHeader when the source is
// shorter than the two header sectors, and with errs.ErrInvalidChunkLocation
// when a location entry points into the header, claims no sectors, claims
// sectors past the end of the file, or overlaps another chunk's claim.
// Payload access fails with errs.ErrInvalidChunkLength when the recorded
// length does not fit the claimed sectors.
//
// # Usage
//
// Iterate every chunk in file order:
//
//	f, err := region.Open("r.0.0.mca")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	err = f.ForEach(func(c *region.Chunk) error {
//	    name, tag, err := nbt.Decode(c.Data)
//	    ...
//	})
//
// Random access to a single chunk:
//
//	if f.Has(12, 7) {
//	    c, err := f.Chunk(12, 7)
//	    ...
//	}
//
// # Thread Safety
//
// A File performs all mutable work at construction. Afterwards it is safe
// for concurrent use as long as the underlying io.ReaderAt is; os.File and
// bytes.Reader both qualify.
package region
