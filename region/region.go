package region

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tilecraft/anvil/errs"
)

const (
	// SectorSize is the allocation unit of a region file. The header tables
	// occupy one sector each and every chunk payload starts on a sector
	// boundary.
	SectorSize = 4096

	// ChunksPerAxis is the side length of the chunk grid a region file
	// covers.
	ChunksPerAxis = 32

	// HeaderSize covers the locations table and the timestamps table.
	HeaderSize = 2 * SectorSize

	chunkCount = ChunksPerAxis * ChunksPerAxis

	// chunkHeaderSize is the per-chunk prefix: a big-endian payload length
	// followed by the compression scheme byte.
	chunkHeaderSize = 5

	// externalSchemeBit marks a chunk whose payload lives in a sidecar
	// .mcc file; the low 7 bits still name the compression scheme.
	externalSchemeBit = 0x80
)

// location is one entry of the locations table.
type location struct {
	offset uint32 // first claimed sector, counted from the file start
	count  uint8  // claimed sector count
}

// File provides random and sequential access to the chunks of an Anvil
// region file.
//
// The constructor reads both header tables and validates every chunk
// location up front; payloads are read and decompressed lazily per chunk.
//
// Note: File is safe for concurrent use after construction as long as the
// underlying io.ReaderAt is.
type File struct {
	r    io.ReaderAt
	size int64

	closer io.Closer

	// Sidecar resolution for externally stored chunks, available only when
	// the file was opened by path with a canonical r.<rx>.<rz>.mca name.
	dir       string
	regionX   int
	regionZ   int
	hasCoords bool

	locations  [chunkCount]location
	timestamps [chunkCount]uint32

	// Indexes of present chunks in ascending sector order.
	order []int
}

// Open opens the region file at path.
//
// The region coordinates are derived from the canonical r.<rx>.<rz>.mca
// file name when possible; they are needed to resolve the sidecar files of
// externally stored chunks. A non-canonical name is not an error, but
// external chunks will then fail with errs.ErrExternalChunk.
//
// The caller must Close the returned File.
//
// Parameters:
//   - path: Region file path
//
// Returns:
//   - *File: Region file with validated header tables
//   - error: I/O errors, errs.ErrInvalidRegionHeader or
//     errs.ErrInvalidChunkLocation
func Open(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := fd.Stat()
	if err != nil {
		fd.Close()
		return nil, err
	}

	f, err := NewReader(fd, info.Size())
	if err != nil {
		fd.Close()
		return nil, err
	}

	f.closer = fd
	f.dir = filepath.Dir(path)
	f.regionX, f.regionZ, f.hasCoords = parseRegionName(filepath.Base(path))

	return f, nil
}

// NewReader creates a File over an in-memory or otherwise seekable source.
//
// Without a backing path there is no directory to resolve sidecar files
// from, so externally stored chunks fail with errs.ErrExternalChunk.
//
// Parameters:
//   - r: Random-access source holding a complete region file
//   - size: Total size of the source in bytes
//
// Returns:
//   - *File: Region file with validated header tables
//   - error: errs.ErrInvalidRegionHeader or errs.ErrInvalidChunkLocation
func NewReader(r io.ReaderAt, size int64) (*File, error) {
	f := &File{r: r, size: size}
	if err := f.parseHeader(); err != nil {
		return nil, err
	}

	return f, nil
}

// Close releases the underlying file handle. It is a no-op for a File
// created with NewReader.
func (f *File) Close() error {
	if f.closer == nil {
		return nil
	}

	return f.closer.Close()
}

// Has reports whether the chunk at the given region-local coordinates is
// present. It panics if x or z is outside [0, ChunksPerAxis).
func (f *File) Has(x, z int) bool {
	return f.locations[chunkIndex(x, z)].offset != 0
}

// Timestamp returns the recorded save time of the chunk at the given
// region-local coordinates, or the zero time.Time when no timestamp is
// recorded. It panics if x or z is outside [0, ChunksPerAxis).
func (f *File) Timestamp(x, z int) time.Time {
	raw := f.timestamps[chunkIndex(x, z)]
	if raw == 0 {
		return time.Time{}
	}

	return time.Unix(int64(raw), 0).UTC()
}

// parseHeader reads both header tables and validates every location entry:
// present chunks must start after the header, claim at least one sector,
// end within the file and not overlap each other.
func (f *File) parseHeader() error {
	if f.size < HeaderSize {
		return fmt.Errorf("region file is %d bytes, want at least %d: %w",
			f.size, HeaderSize, errs.ErrInvalidRegionHeader)
	}

	header := make([]byte, HeaderSize)
	if _, err := f.r.ReadAt(header, 0); err != nil {
		return fmt.Errorf("read region header: %w", err)
	}

	for i := range chunkCount {
		entry := header[4*i : 4*i+4]
		f.timestamps[i] = binary.BigEndian.Uint32(header[SectorSize+4*i:])

		offset := uint32(entry[0])<<16 | uint32(entry[1])<<8 | uint32(entry[2])
		if offset == 0 {
			continue
		}
		count := entry[3]

		x, z := chunkCoords(i)
		switch {
		case offset < HeaderSize/SectorSize:
			return fmt.Errorf("chunk (%d, %d) location points into the header: %w",
				x, z, errs.ErrInvalidChunkLocation)
		case count == 0:
			return fmt.Errorf("chunk (%d, %d) claims no sectors: %w",
				x, z, errs.ErrInvalidChunkLocation)
		case (int64(offset)+int64(count))*SectorSize > f.size:
			return fmt.Errorf("chunk (%d, %d) claims sectors beyond the file end: %w",
				x, z, errs.ErrInvalidChunkLocation)
		}

		f.locations[i] = location{offset: offset, count: count}
		f.order = append(f.order, i)
	}

	slices.SortFunc(f.order, func(a, b int) int {
		return int(f.locations[a].offset) - int(f.locations[b].offset)
	})

	for k := 1; k < len(f.order); k++ {
		prev := f.locations[f.order[k-1]]
		cur := f.locations[f.order[k]]
		if prev.offset+uint32(prev.count) > cur.offset {
			px, pz := chunkCoords(f.order[k-1])
			cx, cz := chunkCoords(f.order[k])

			return fmt.Errorf("chunks (%d, %d) and (%d, %d) claim overlapping sectors: %w",
				px, pz, cx, cz, errs.ErrInvalidChunkLocation)
		}
	}

	return nil
}

// chunkIndex maps region-local coordinates to the header table index.
func chunkIndex(x, z int) int {
	if x < 0 || x >= ChunksPerAxis || z < 0 || z >= ChunksPerAxis {
		panic(fmt.Sprintf("region: chunk coordinates (%d, %d) out of range", x, z))
	}

	return z*ChunksPerAxis + x
}

// chunkCoords is the inverse of chunkIndex.
func chunkCoords(i int) (x, z int) {
	return i % ChunksPerAxis, i / ChunksPerAxis
}

// parseRegionName extracts the region coordinates from a canonical
// r.<rx>.<rz>.mca file name.
func parseRegionName(name string) (rx, rz int, ok bool) {
	parts := strings.Split(name, ".")
	if len(parts) != 4 || parts[0] != "r" || parts[3] != "mca" {
		return 0, 0, false
	}

	rx, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}

	rz, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, false
	}

	return rx, rz, true
}
