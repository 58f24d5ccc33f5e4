// Package compress implements the chunk compression schemes used by region
// files and standalone world data files.
//
// Each chunk payload on disk is prefixed with a one-byte scheme identifier;
// this package maps those identifiers to codecs:
//
//	1  Gzip    RFC 1952. Written by very old versions, still read everywhere.
//	2  Zlib    RFC 1950. The default for chunk data since the format exists.
//	3  None    Stored uncompressed.
//	4  LZ4     Java LZ4Block stream framing, selectable since 24w04a.
//	127 Custom Namespaced server-side algorithm; recognized but not decoded.
//
// # Usage
//
//	codec, err := compress.ForScheme(compress.SchemeZlib)
//	if err != nil {
//	    return err
//	}
//	payload, err := codec.Decompress(raw)
//
// The codecs are symmetric: the Compress direction exists for building
// fixtures and for tooling that needs to write payloads back, and produces
// streams the game's own readers accept.
//
// # Integrity
//
// Gzip, zlib, and the LZ4 block stream all carry checksums of the original
// content. Decompress verifies them and fails with an error wrapping
// errs.ErrChecksumMismatch (LZ4) or the underlying library's corruption
// error rather than returning damaged data. The None codec has no framing at
// all and passes data through unchanged and uncopied.
//
// # Concurrency
//
// All codecs are stateless values, safe for concurrent use. Internal scratch
// buffers and inflater state are pooled per call.
package compress
