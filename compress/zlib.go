package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
	"github.com/tilecraft/anvil/internal/pool"
)

// zlibReader is the read side of an inflater that can be rewound onto a new
// stream, which is what zlib.NewReader returns in practice.
type zlibReader interface {
	io.ReadCloser
	zlib.Resetter
}

var zlibReaderPool = sync.Pool{}

// ZlibCodec implements the zlib chunk compression scheme, the default for
// everything written into region files.
type ZlibCodec struct{}

var _ Codec = (*ZlibCodec)(nil)

// NewZlibCodec creates a new zlib codec.
func NewZlibCodec() ZlibCodec {
	return ZlibCodec{}
}

// Compress compresses data into a zlib stream.
func (ZlibCodec) Compress(data []byte) ([]byte, error) {
	bb := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(bb)

	zw := zlib.NewWriter(bb)
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}

// Decompress inflates a zlib stream. The stream's Adler-32 checksum is
// verified as part of reading it to the end.
func (ZlibCodec) Decompress(data []byte) ([]byte, error) {
	var zr zlibReader
	if v := zlibReaderPool.Get(); v != nil {
		zr = v.(zlibReader)
		if err := zr.Reset(bytes.NewReader(data), nil); err != nil {
			return nil, fmt.Errorf("zlib header: %w", err)
		}
	} else {
		rc, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("zlib header: %w", err)
		}
		zr = rc.(zlibReader)
	}
	defer zlibReaderPool.Put(zr)

	bb := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(bb)

	if _, err := bb.ReadFrom(zr); err != nil {
		return nil, fmt.Errorf("zlib decompress: %w", err)
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}
