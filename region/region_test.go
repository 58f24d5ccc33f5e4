package region

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tilecraft/anvil/compress"
	"github.com/tilecraft/anvil/errs"
)

// nbtPayload is a tiny decoded-form chunk body: an unnamed compound holding
// byte "a" = 5. Region fixtures store it behind the scheme under test.
var nbtPayload = []byte{0x0A, 0x00, 0x00, 0x01, 0x00, 0x01, 'a', 0x05, 0x00}

type fixtureChunk struct {
	x, z      int
	scheme    compress.Scheme
	payload   []byte // stored bytes, already compressed for the scheme
	timestamp uint32
	external  bool
	sectors   int // 0 means just enough for the payload
}

// buildRegion lays out a region file with the given chunks placed in call
// order, so their sector offsets ascend in that order.
func buildRegion(chunks ...fixtureChunk) []byte {
	buf := make([]byte, HeaderSize)

	next := 2
	for _, c := range chunks {
		i := c.z*ChunksPerAxis + c.x

		sectors := (chunkHeaderSize + len(c.payload) + SectorSize - 1) / SectorSize
		if c.sectors > 0 {
			sectors = c.sectors
		}

		buf[4*i] = byte(next >> 16)
		buf[4*i+1] = byte(next >> 8)
		buf[4*i+2] = byte(next)
		buf[4*i+3] = byte(sectors)
		binary.BigEndian.PutUint32(buf[SectorSize+4*i:], c.timestamp)

		block := make([]byte, sectors*SectorSize)
		binary.BigEndian.PutUint32(block, uint32(len(c.payload))+1)

		schemeByte := byte(c.scheme)
		if c.external {
			schemeByte |= externalSchemeBit
		}
		block[4] = schemeByte
		copy(block[chunkHeaderSize:], c.payload)

		buf = append(buf, block...)
		next += sectors
	}

	return buf
}

func openFixture(t *testing.T, data []byte) *File {
	t.Helper()

	f, err := NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	return f
}

func zlibPayload(t *testing.T) []byte {
	t.Helper()

	data, err := compress.NewZlibCodec().Compress(nbtPayload)
	require.NoError(t, err)

	return data
}

func TestNewReader_TooSmall(t *testing.T) {
	_, err := NewReader(bytes.NewReader(make([]byte, 100)), 100)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidRegionHeader)
}

func TestNewReader_EmptyRegion(t *testing.T) {
	f := openFixture(t, make([]byte, HeaderSize))

	require.False(t, f.Has(0, 0))
	require.False(t, f.Has(31, 31))

	calls := 0
	err := f.ForEach(func(*Chunk) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 0, calls)
}

func TestNewReader_HeaderValidation(t *testing.T) {
	// Three sectors: header plus one payload sector.
	blank := func() []byte {
		return make([]byte, 3*SectorSize)
	}

	setEntry := func(buf []byte, x, z, offset, count int) {
		i := 4 * (z*ChunksPerAxis + x)
		buf[i] = byte(offset >> 16)
		buf[i+1] = byte(offset >> 8)
		buf[i+2] = byte(offset)
		buf[i+3] = byte(count)
	}

	t.Run("Location points into the header", func(t *testing.T) {
		buf := blank()
		setEntry(buf, 0, 0, 1, 1)

		_, err := NewReader(bytes.NewReader(buf), int64(len(buf)))
		require.ErrorIs(t, err, errs.ErrInvalidChunkLocation)
	})

	t.Run("Zero sector count", func(t *testing.T) {
		buf := blank()
		setEntry(buf, 0, 0, 2, 0)

		_, err := NewReader(bytes.NewReader(buf), int64(len(buf)))
		require.ErrorIs(t, err, errs.ErrInvalidChunkLocation)
	})

	t.Run("Claim beyond the file end", func(t *testing.T) {
		buf := blank()
		setEntry(buf, 0, 0, 2, 5)

		_, err := NewReader(bytes.NewReader(buf), int64(len(buf)))
		require.ErrorIs(t, err, errs.ErrInvalidChunkLocation)
	})

	t.Run("Duplicate sector claim", func(t *testing.T) {
		buf := blank()
		setEntry(buf, 0, 0, 2, 1)
		setEntry(buf, 1, 0, 2, 1)

		_, err := NewReader(bytes.NewReader(buf), int64(len(buf)))
		require.ErrorIs(t, err, errs.ErrInvalidChunkLocation)
	})

	t.Run("Partial overlap", func(t *testing.T) {
		buf := make([]byte, 5*SectorSize)
		setEntry(buf, 0, 0, 2, 2)
		setEntry(buf, 1, 0, 3, 1)

		_, err := NewReader(bytes.NewReader(buf), int64(len(buf)))
		require.ErrorIs(t, err, errs.ErrInvalidChunkLocation)
	})

	t.Run("Adjacent claims are fine", func(t *testing.T) {
		buf := make([]byte, 4*SectorSize)
		setEntry(buf, 0, 0, 2, 1)
		setEntry(buf, 1, 0, 3, 1)

		_, err := NewReader(bytes.NewReader(buf), int64(len(buf)))
		require.NoError(t, err)
	})
}

func TestFile_HasAndTimestamp(t *testing.T) {
	data := buildRegion(fixtureChunk{
		x: 3, z: 7,
		scheme:    compress.SchemeZlib,
		payload:   zlibPayload(t),
		timestamp: 1700000000,
	})
	f := openFixture(t, data)

	require.True(t, f.Has(3, 7))
	require.False(t, f.Has(7, 3))

	require.Equal(t, time.Unix(1700000000, 0).UTC(), f.Timestamp(3, 7))
	require.True(t, f.Timestamp(0, 0).IsZero())
}

func TestFile_CoordinateRange(t *testing.T) {
	f := openFixture(t, make([]byte, HeaderSize))

	require.Panics(t, func() { f.Has(-1, 0) })
	require.Panics(t, func() { f.Has(0, ChunksPerAxis) })
	require.Panics(t, func() { f.Timestamp(ChunksPerAxis, 0) })
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "r.0.0.mca")

	data := buildRegion(fixtureChunk{
		x: 1, z: 2,
		scheme:  compress.SchemeZlib,
		payload: zlibPayload(t),
	})
	require.NoError(t, os.WriteFile(path, data, 0o644))

	f, err := Open(path)
	require.NoError(t, err)

	require.True(t, f.Has(1, 2))

	c, err := f.Chunk(1, 2)
	require.NoError(t, err)
	require.Equal(t, nbtPayload, c.Data)

	require.NoError(t, f.Close())
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "r.0.0.mca"))
	require.Error(t, err)
}

func TestParseRegionName(t *testing.T) {
	tests := []struct {
		name   string
		rx, rz int
		ok     bool
	}{
		{name: "r.0.0.mca", rx: 0, rz: 0, ok: true},
		{name: "r.-3.12.mca", rx: -3, rz: 12, ok: true},
		{name: "r.10.-1.mca", rx: 10, rz: -1, ok: true},
		{name: "region.mca", ok: false},
		{name: "r.x.0.mca", ok: false},
		{name: "r.0.0.mcc", ok: false},
		{name: "r.0.0.0.mca", ok: false},
		{name: "r..0.mca", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rx, rz, ok := parseRegionName(tt.name)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.rx, rx)
				require.Equal(t, tt.rz, rz)
			}
		})
	}
}
