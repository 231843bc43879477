package section

import (
	"fmt"

	"github.com/spikeknit/spikeknit/errs"
	"github.com/spikeknit/spikeknit/format"
)

// Flag represents the packed flag field at the start of a pattern header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the blob format:
	//   - 0xEC10: pattern blob format v1
	Options uint16

	// RowEncoding indicates how stitch counts are written in the payload.
	// Valid values: TypeRaw, TypeVarint
	RowEncoding uint8

	// Compression indicates the codec applied to the row payload.
	// Valid values: CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4
	Compression uint8
}

// NewFlag creates a Flag with default settings: little-endian, varint rows,
// no compression.
func NewFlag() Flag {
	flag := Flag{
		Options:     MagicPatternV1Opt,
		RowEncoding: RowEncodingVarint,
		Compression: PayloadCompressionNone,
	}
	flag.WithLittleEndian()

	return flag
}

// IsValidMagicNumber checks if the magic number in the Options field is valid.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicPatternV1Opt
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsLittleEndian returns whether the data is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the data is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// SetRowEncoding sets the row payload encoding.
func (f *Flag) SetRowEncoding(encoding format.EncodingType) {
	f.RowEncoding = uint8(encoding)
}

// GetRowEncoding returns the row payload encoding.
func (f Flag) GetRowEncoding() format.EncodingType {
	return format.EncodingType(f.RowEncoding)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// GetCompression returns the payload compression type.
func (f Flag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks if the flag contains valid values.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return fmt.Errorf("%w: reserved bits set", errs.ErrInvalidMagicNumber)
	}

	if _, ok := validRowEncodings[f.RowEncoding]; !ok {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidEncodingType, f.RowEncoding)
	}

	if _, ok := validCompressions[f.Compression]; !ok {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompression, f.Compression)
	}

	return nil
}
