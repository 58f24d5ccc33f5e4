package compress

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/pierrec/lz4/v4"
	"github.com/tilecraft/anvil/errs"
	"github.com/tilecraft/anvil/internal/pool"
	"github.com/tilecraft/anvil/internal/xxh32"
)

// The LZ4 chunk scheme is not a bare LZ4 frame: the game writes it through
// Java's LZ4BlockOutputStream, whose stream is a sequence of self-contained
// blocks. Each block is
//
//	magic "LZ4Block" | token | compressedLen | originalLen | checksum | data
//
// with little-endian uint32 lengths, a token combining the compression
// method (0x10 raw, 0x20 LZ4) with a size level, and an XXH32 checksum of
// the decompressed content under a fixed seed. A block with both lengths
// zero and checksum zero terminates the stream.
const (
	lz4BlockMagic      = "LZ4Block"
	lz4BlockHeaderSize = len(lz4BlockMagic) + 1 + 4 + 4 + 4
	lz4BlockMethodRaw  = 0x10
	lz4BlockMethodLZ4  = 0x20
	lz4BlockSeed       = 0x9747B28C
	lz4BlockLevelBase  = 10
	lz4BlockMaxLevel   = 0x0F

	// lz4BlockSize is the block granularity this codec writes. Level 6 makes
	// the declared per-block bound 1<<16, exactly one block's worth.
	lz4BlockSize  = 64 * 1024
	lz4BlockLevel = 6
)

// lz4CompressorPool pools lz4.Compressor instances, which keep an internal
// match table worth reusing.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4BlockCodec implements the LZ4 chunk compression scheme using the Java
// block-stream framing described above.
type LZ4BlockCodec struct{}

var _ Codec = (*LZ4BlockCodec)(nil)

// NewLZ4BlockCodec creates a new LZ4 block-stream codec.
func NewLZ4BlockCodec() LZ4BlockCodec {
	return LZ4BlockCodec{}
}

// Compress compresses data into an LZ4 block stream. Blocks that do not
// shrink under LZ4 are stored raw, and an empty input produces just the
// stream terminator.
func (LZ4BlockCodec) Compress(data []byte) ([]byte, error) {
	bb := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(bb)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	scratch := make([]byte, lz4.CompressBlockBound(lz4BlockSize))

	for off := 0; off < len(data); off += lz4BlockSize {
		block := data[off:min(off+lz4BlockSize, len(data))]

		n, err := lc.CompressBlock(block, scratch)
		if err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}

		check := xxh32.Sum(block, lz4BlockSeed)
		if n == 0 || n >= len(block) {
			// Incompressible block, store it raw.
			writeLZ4BlockHeader(bb, lz4BlockMethodRaw, len(block), len(block), check)
			_, _ = bb.Write(block)
		} else {
			writeLZ4BlockHeader(bb, lz4BlockMethodLZ4, n, len(block), check)
			_, _ = bb.Write(scratch[:n])
		}
	}

	writeLZ4BlockHeader(bb, lz4BlockMethodRaw, 0, 0, 0)

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}

func writeLZ4BlockHeader(bb *pool.ByteBuffer, method byte, compressedLen, originalLen int, check uint32) {
	start := bb.Len()
	bb.ExtendOrGrow(lz4BlockHeaderSize)
	hdr := bb.Bytes()[start:]

	copy(hdr, lz4BlockMagic)
	hdr[8] = method | lz4BlockLevel
	binary.LittleEndian.PutUint32(hdr[9:], uint32(compressedLen))
	binary.LittleEndian.PutUint32(hdr[13:], uint32(originalLen))
	binary.LittleEndian.PutUint32(hdr[17:], check)
}

// Decompress reassembles the original content of an LZ4 block stream,
// verifying each block's checksum. Bytes past the stream terminator are
// ignored.
func (LZ4BlockCodec) Decompress(data []byte) ([]byte, error) {
	bb := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(bb)

	pos := 0
	for {
		if len(data)-pos < lz4BlockHeaderSize {
			return nil, fmt.Errorf("truncated block header at offset %d: %w", pos, errs.ErrCorruptFrame)
		}

		hdr := data[pos : pos+lz4BlockHeaderSize]
		if string(hdr[:8]) != lz4BlockMagic {
			return nil, fmt.Errorf("bad block magic at offset %d: %w", pos, errs.ErrCorruptFrame)
		}

		token := hdr[8]
		method := token & 0xF0
		level := int(token & lz4BlockMaxLevel)
		compressedLen := binary.LittleEndian.Uint32(hdr[9:])
		originalLen := binary.LittleEndian.Uint32(hdr[13:])
		check := binary.LittleEndian.Uint32(hdr[17:])
		pos += lz4BlockHeaderSize

		if method != lz4BlockMethodRaw && method != lz4BlockMethodLZ4 {
			return nil, fmt.Errorf("bad block method 0x%02x: %w", method, errs.ErrCorruptFrame)
		}

		if compressedLen == 0 && originalLen == 0 {
			if check != 0 {
				return nil, fmt.Errorf("nonzero checksum on stream terminator: %w", errs.ErrCorruptFrame)
			}

			out := make([]byte, bb.Len())
			copy(out, bb.Bytes())

			return out, nil
		}

		switch {
		case compressedLen > math.MaxInt32 || originalLen > math.MaxInt32:
			return nil, fmt.Errorf("block length out of range: %w", errs.ErrCorruptFrame)
		case compressedLen == 0 || originalLen == 0:
			return nil, fmt.Errorf("half-empty block (%d compressed, %d original): %w", compressedLen, originalLen, errs.ErrCorruptFrame)
		case int64(originalLen) > 1<<(lz4BlockLevelBase+level):
			return nil, fmt.Errorf("block of %d bytes exceeds level %d bound: %w", originalLen, level, errs.ErrCorruptFrame)
		case method == lz4BlockMethodRaw && compressedLen != originalLen:
			return nil, fmt.Errorf("raw block length mismatch (%d != %d): %w", compressedLen, originalLen, errs.ErrCorruptFrame)
		}

		if len(data)-pos < int(compressedLen) {
			return nil, fmt.Errorf("truncated block data at offset %d: %w", pos, errs.ErrCorruptFrame)
		}
		block := data[pos : pos+int(compressedLen)]
		pos += int(compressedLen)

		start := bb.Len()
		bb.ExtendOrGrow(int(originalLen))
		dst := bb.Bytes()[start:]

		if method == lz4BlockMethodRaw {
			copy(dst, block)
		} else {
			n, err := lz4.UncompressBlock(block, dst)
			if err != nil {
				return nil, fmt.Errorf("lz4 decompress: %w", err)
			}
			if n != int(originalLen) {
				return nil, fmt.Errorf("block inflated to %d bytes, declared %d: %w", n, originalLen, errs.ErrCorruptFrame)
			}
		}

		if got := xxh32.Sum(dst, lz4BlockSeed); got != check {
			return nil, fmt.Errorf("block checksum %08x, stored %08x: %w", got, check, errs.ErrChecksumMismatch)
		}
	}
}
