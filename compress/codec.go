package compress

// Compressor produces a chunk payload in its on-disk compressed form.
type Compressor interface {
	// Compress compresses data and returns the result.
	//
	// Memory management:
	//   - The returned slice is newly allocated and owned by the caller
	//   - The input slice is not modified
	//   - Internal buffers may be pooled across calls
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a chunk payload from its on-disk compressed form.
//
// Implementations validate framing and embedded checksums where the format
// carries them, and fail on corrupt input rather than returning partial
// output.
type Decompressor interface {
	// Decompress decompresses data and returns the original content.
	//
	// Memory management:
	//   - The returned slice is newly allocated and owned by the caller,
	//     except where an implementation documents pass-through behavior
	//   - The input slice is not modified
	//   - Internal buffers may be pooled across calls
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression scheme.
//
// All codecs in this package are stateless values, safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}
