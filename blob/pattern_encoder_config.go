package blob

import (
	"fmt"

	"github.com/spikeknit/spikeknit/endian"
	"github.com/spikeknit/spikeknit/errs"
	"github.com/spikeknit/spikeknit/format"
	"github.com/spikeknit/spikeknit/internal/options"
	"github.com/spikeknit/spikeknit/section"
)

type endianness uint8

const (
	littleEndianOpt endianness = iota
	bigEndianOpt
)

// PatternEncoderConfig holds the header flag an encoder stamps on every blob.
type PatternEncoderConfig struct {
	flag   section.Flag
	engine endian.EndianEngine
}

// NewPatternEncoderConfig creates a config with the defaults: little-endian,
// varint rows, no compression.
func NewPatternEncoderConfig() *PatternEncoderConfig {
	flag := section.NewFlag()

	return &PatternEncoderConfig{
		flag:   flag,
		engine: endian.ForFlag(flag.IsBigEndian()),
	}
}

// setRowEncoding sets the row payload encoding.
func (c *PatternEncoderConfig) setRowEncoding(enc format.EncodingType) error {
	switch enc {
	case format.TypeRaw, format.TypeVarint:
		c.flag.SetRowEncoding(enc)
		return nil
	default:
		return fmt.Errorf("%w: %v", errs.ErrInvalidEncodingType, enc)
	}
}

// setCompression sets the payload compression.
func (c *PatternEncoderConfig) setCompression(comp format.CompressionType) error {
	switch comp {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		c.flag.SetCompression(comp)
		return nil
	default:
		return fmt.Errorf("%w: %v", errs.ErrInvalidCompression, comp)
	}
}

// setEndianess sets the byte order of the header fields and raw row counts.
func (c *PatternEncoderConfig) setEndianess(e endianness) {
	if e == bigEndianOpt {
		c.flag.WithBigEndian()
	} else {
		c.flag.WithLittleEndian()
	}

	c.engine = endian.ForFlag(c.flag.IsBigEndian())
}

// Flag returns the flag new blobs will carry.
func (c *PatternEncoderConfig) Flag() section.Flag {
	return c.flag
}

// PatternEncoderOption is a functional option for configuring PatternEncoder.
type PatternEncoderOption = options.Option[*PatternEncoderConfig]

// WithRowEncoding configures how stitch counts are written.
// Valid values are format.TypeRaw and format.TypeVarint.
// Default is format.TypeVarint.
func WithRowEncoding(enc format.EncodingType) PatternEncoderOption {
	return options.New(func(cfg *PatternEncoderConfig) error {
		return cfg.setRowEncoding(enc)
	})
}

// WithCompression configures compression for the row payload.
// Available compression types: format.CompressionZstd, format.CompressionS2,
// format.CompressionLZ4, format.CompressionNone.
// Default is format.CompressionNone.
func WithCompression(comp format.CompressionType) PatternEncoderOption {
	return options.New(func(cfg *PatternEncoderConfig) error {
		return cfg.setCompression(comp)
	})
}

// WithLittleEndian sets the encoder to use little-endian byte order. This is the default.
func WithLittleEndian() PatternEncoderOption {
	return options.NoError(func(c *PatternEncoderConfig) {
		c.setEndianess(littleEndianOpt)
	})
}

// WithBigEndian sets the encoder to use big-endian byte order.
func WithBigEndian() PatternEncoderOption {
	return options.NoError(func(c *PatternEncoderConfig) {
		c.setEndianess(bigEndianOpt)
	})
}
