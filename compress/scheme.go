package compress

import (
	"fmt"

	"github.com/tilecraft/anvil/errs"
)

// Scheme identifies how a chunk payload is compressed. The wire values are
// the ones region files store in the byte after the payload length.
type Scheme uint8

const (
	SchemeGzip Scheme = 1 // SchemeGzip is RFC 1952 gzip. Legacy, rarely seen on disk.
	SchemeZlib Scheme = 2 // SchemeZlib is RFC 1950 zlib, the default chunk compression.
	SchemeNone Scheme = 3 // SchemeNone stores the payload uncompressed.
	SchemeLZ4  Scheme = 4 // SchemeLZ4 is the Java LZ4Block stream framing.

	// SchemeCustom marks a payload compressed by a namespaced algorithm the
	// game was configured with. The format is recognized so the name can be
	// reported, but no custom algorithms are defined.
	SchemeCustom Scheme = 127
)

func (s Scheme) String() string {
	switch s {
	case SchemeGzip:
		return "Gzip"
	case SchemeZlib:
		return "Zlib"
	case SchemeNone:
		return "None"
	case SchemeLZ4:
		return "LZ4"
	case SchemeCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// ForScheme returns the codec implementing the given scheme.
//
// SchemeCustom fails with errs.ErrUnsupportedScheme and values outside the
// defined set fail with errs.ErrUnknownScheme.
func ForScheme(s Scheme) (Codec, error) {
	switch s {
	case SchemeGzip:
		return NewGzipCodec(), nil
	case SchemeZlib:
		return NewZlibCodec(), nil
	case SchemeNone:
		return NewNoneCodec(), nil
	case SchemeLZ4:
		return NewLZ4BlockCodec(), nil
	case SchemeCustom:
		return nil, fmt.Errorf("custom algorithm: %w", errs.ErrUnsupportedScheme)
	default:
		return nil, fmt.Errorf("scheme %d: %w", uint8(s), errs.ErrUnknownScheme)
	}
}
