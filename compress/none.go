package compress

// NoneCodec implements the uncompressed chunk scheme: payloads are stored
// byte for byte.
type NoneCodec struct{}

var _ Codec = (*NoneCodec)(nil)

// NewNoneCodec creates a new pass-through codec.
func NewNoneCodec() NoneCodec {
	return NoneCodec{}
}

// Compress returns the input slice unchanged, without copying.
//
// Note: The returned slice shares the input's memory. Callers that hand the
// input to pooled or reused storage must copy first.
func (NoneCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice unchanged, without copying.
//
// Note: The returned slice shares the input's memory. Callers that hand the
// input to pooled or reused storage must copy first.
func (NoneCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
