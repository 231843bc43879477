package compress

// NoOpCompressor passes payloads through unchanged. Row payloads of small
// patterns are often shorter than any compressed frame, so this is the
// encoder default.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is. The returned slice aliases the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is after checking its length against rawLen.
func (c NoOpCompressor) Decompress(data []byte, rawLen int) ([]byte, error) {
	return checkLength("none", data, rawLen)
}
