package compress

import (
	"fmt"

	"github.com/spikeknit/spikeknit/errs"
	"github.com/spikeknit/spikeknit/format"
)

// Compressor compresses an encoded row payload.
type Compressor interface {
	// Compress compresses data. The input slice is not modified; the result
	// may alias it for the no-op codec.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
type Decompressor interface {
	// Decompress inflates data into a payload of exactly rawLen bytes.
	//
	// The pattern blob header records the raw length, so implementations
	// size their output up front and report ErrInvalidPayloadLength when
	// the inflated size differs.
	Decompress(data []byte, rawLen int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression round trip.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size, or 0 for an
// empty input. Values above 1.0 mean the codec added overhead, which is
// common for tiny patterns.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage. It is negative
// when compression grew the payload.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses data with the codec for ct and reports the sizes.
func Measure(ct format.CompressionType, data []byte) (CompressionStats, error) {
	codec, err := GetCodec(ct)
	if err != nil {
		return CompressionStats{}, err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s compression failed: %w", ct, err)
	}

	return CompressionStats{
		Algorithm:      ct,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(compressed)),
	}, nil
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
// Built-in codecs are stateless and safe for concurrent use.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}

func checkLength(name string, got []byte, rawLen int) ([]byte, error) {
	if len(got) != rawLen {
		return nil, fmt.Errorf("%w: %s inflated %d bytes, header says %d",
			errs.ErrInvalidPayloadLength, name, len(got), rawLen)
	}

	return got, nil
}
