// Package errs defines the sentinel errors shared by the anvil packages.
//
// All errors returned by this module either are one of these sentinels or wrap
// one via fmt.Errorf with %w, so callers can match them with errors.Is while
// still receiving positional context (offsets, counts, type codes) in the
// message.
package errs

import "errors"

// NBT decoding errors.
var (
	// ErrUnexpectedEOF indicates the input ended before a complete tag could
	// be read. The wrapped message carries the offset and the width of the
	// read that failed.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrUnknownTagType indicates a type code outside the defined range
	// (0x00-0x0C) was encountered. The wrapped message carries the offending
	// byte value.
	ErrUnknownTagType = errors.New("unknown tag type")

	// ErrDepthExceeded indicates the nesting of lists and compounds went past
	// the decoder's configured limit.
	ErrDepthExceeded = errors.New("nesting depth exceeded")

	// ErrMalformedList indicates a list header that cannot describe a valid
	// list, such as a non-zero element count with the end-tag element type.
	ErrMalformedList = errors.New("malformed list")

	// ErrInvalidOption indicates a decoder option was given an out-of-range
	// value.
	ErrInvalidOption = errors.New("invalid option")
)

// Region file errors.
var (
	// ErrInvalidRegionHeader indicates the file is too small to hold the
	// location and timestamp tables, or a table entry is structurally
	// impossible.
	ErrInvalidRegionHeader = errors.New("invalid region header")

	// ErrInvalidChunkLocation indicates a location entry that points outside
	// the file, into the header, or at sectors already claimed by another
	// chunk.
	ErrInvalidChunkLocation = errors.New("invalid chunk location")

	// ErrInvalidChunkLength indicates a chunk payload length field that does
	// not fit the sectors allocated to it.
	ErrInvalidChunkLength = errors.New("invalid chunk length")

	// ErrChunkNotFound indicates the requested chunk position has no data in
	// the region file.
	ErrChunkNotFound = errors.New("chunk not found")

	// ErrExternalChunk indicates a chunk stored in an external .mcc file that
	// the reader has no way to resolve.
	ErrExternalChunk = errors.New("externally stored chunk")
)

// Compression errors.
var (
	// ErrUnknownScheme indicates a compression scheme byte outside the
	// defined set.
	ErrUnknownScheme = errors.New("unknown compression scheme")

	// ErrUnsupportedScheme indicates a recognized scheme this module does not
	// decompress, such as a named custom algorithm.
	ErrUnsupportedScheme = errors.New("unsupported compression scheme")

	// ErrChecksumMismatch indicates compressed data whose stored checksum
	// does not match the decompressed content.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrCorruptFrame indicates framing metadata (magic bytes, block tokens,
	// length fields) that does not describe a valid compressed stream.
	ErrCorruptFrame = errors.New("corrupt compressed frame")
)
