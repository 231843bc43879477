package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/spikeknit/spikeknit/errs"
)

type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses the input data using S2 decompression.
func (c S2Compressor) Decompress(data []byte, rawLen int) ([]byte, error) {
	if len(data) == 0 {
		return checkLength("s2", nil, rawLen)
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n != rawLen {
		return nil, fmt.Errorf("%w: s2 block holds %d bytes, header says %d", errs.ErrInvalidPayloadLength, n, rawLen)
	}

	out, err := s2.Decode(make([]byte, rawLen), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
