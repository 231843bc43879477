//go:build gozstd && cgo

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// Compress compresses the input data using Zstandard compression.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses Zstd-compressed data into a buffer sized by rawLen.
func (c ZstdCompressor) Decompress(data []byte, rawLen int) ([]byte, error) {
	if len(data) == 0 {
		return checkLength("zstd", nil, rawLen)
	}

	out, err := gozstd.Decompress(make([]byte, 0, rawLen), data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return checkLength("zstd", out, rawLen)
}
