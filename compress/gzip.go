package compress

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/tilecraft/anvil/internal/pool"
)

// gzipReaderPool pools gzip.Reader instances for reuse. Reset avoids
// re-allocating the inflate state on every chunk.
var gzipReaderPool = sync.Pool{}

// GzipCodec implements the gzip chunk compression scheme. Modern writers no
// longer produce it, but level.dat files and old worlds still carry gzip
// streams.
type GzipCodec struct{}

var _ Codec = (*GzipCodec)(nil)

// NewGzipCodec creates a new gzip codec.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

// Compress compresses data into a gzip stream.
func (GzipCodec) Compress(data []byte) ([]byte, error) {
	bb := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(bb)

	zw := gzip.NewWriter(bb)
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("gzip compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("gzip compress: %w", err)
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}

// Decompress inflates a gzip stream. The stream's CRC32 is verified as part
// of reading it to the end.
func (GzipCodec) Decompress(data []byte) ([]byte, error) {
	var zr *gzip.Reader
	if v := gzipReaderPool.Get(); v != nil {
		zr = v.(*gzip.Reader)
		if err := zr.Reset(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("gzip header: %w", err)
		}
	} else {
		var err error
		zr, err = gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip header: %w", err)
		}
	}
	defer gzipReaderPool.Put(zr)

	bb := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(bb)

	if _, err := bb.ReadFrom(zr); err != nil {
		return nil, fmt.Errorf("gzip decompress: %w", err)
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}
