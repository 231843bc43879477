package compress

// ZstdCompressor provides Zstandard compression for row payloads.
//
// The pure Go implementation from klauspost/compress is used by default.
// Building with the gozstd tag (and cgo) switches to valyala/gozstd, which
// wraps the reference C library.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
