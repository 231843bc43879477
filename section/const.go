package section

import (
	"math"

	"github.com/spikeknit/spikeknit/format"
)

const (
	// Bit masks
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicPatternV1Opt = 0xEC10 // MagicPatternV1Opt is the version 1 magic number for pattern blobs.

	// Row encodings
	RowEncodingRaw    = uint8(format.TypeRaw)    // fixed-width stitch counts
	RowEncodingVarint = uint8(format.TypeVarint) // uvarint stitch counts

	// Payload compression
	PayloadCompressionNone = uint8(format.CompressionNone)
	PayloadCompressionZstd = uint8(format.CompressionZstd)
	PayloadCompressionS2   = uint8(format.CompressionS2)
	PayloadCompressionLZ4  = uint8(format.CompressionLZ4)
)

// offset and section sizes in the blob file
const (
	HeaderSize       = 32             // fixed header size in bytes
	PayloadOffset    = HeaderSize     // byte offset where the row payload starts
	MaxFieldValue    = math.MaxUint32 // largest value of a uint32 header field
	MaxPayloadLength = 64 << 20       // largest raw payload a decoder will inflate
)

var (
	validRowEncodings = map[uint8]struct{}{
		RowEncodingRaw:    {},
		RowEncodingVarint: {},
	}

	validCompressions = map[uint8]struct{}{
		PayloadCompressionNone: {},
		PayloadCompressionZstd: {},
		PayloadCompressionS2:   {},
		PayloadCompressionLZ4:  {},
	}
)
