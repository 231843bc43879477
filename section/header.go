package section

import (
	"encoding/binary"
	"fmt"

	"github.com/spikeknit/spikeknit/endian"
	"github.com/spikeknit/spikeknit/errs"
)

// Header represents the fixed-size header section of a pattern blob.
// It is 32 bytes and describes the pattern parameters and the row payload.
type Header struct {
	// Flag is a packed field for options, magic number, encoding and compression.
	Flag Flag // 4 bytes, offset 0-3
	// SpikeHeight is the generator's spike height.
	SpikeHeight uint32 // 4 bytes, offset 4-7
	// SpikeDistance is the generator's spike distance.
	SpikeDistance uint32 // 4 bytes, offset 8-11
	// RowCount is the number of rows in the payload.
	RowCount uint32 // 4 bytes, offset 12-15
	// PayloadOffset is the byte offset to the start of the row payload.
	PayloadOffset uint32 // 4 bytes, offset 16-19
	// PayloadLength is the uncompressed size of the row payload in bytes.
	PayloadLength uint32 // 4 bytes, offset 20-23
	// Checksum is the xxHash64 of the uncompressed row payload.
	Checksum uint64 // 8 bytes, offset 24-31
}

// NewHeader creates a Header for the given parameters with a default flag.
func NewHeader(spikeHeight, spikeDistance, rowCount int) (*Header, error) {
	if spikeHeight < 1 || uint64(spikeHeight) > MaxFieldValue {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidSpikeHeight, spikeHeight)
	}
	if spikeDistance < 1 || uint64(spikeDistance) > MaxFieldValue {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidSpikeDistance, spikeDistance)
	}
	if rowCount < 0 || uint64(rowCount) > MaxFieldValue {
		return nil, fmt.Errorf("%w: %d", errs.ErrRowCountMismatch, rowCount)
	}

	return &Header{
		Flag:          NewFlag(),
		SpikeHeight:   uint32(spikeHeight),   //nolint: gosec
		SpikeDistance: uint32(spikeDistance), //nolint: gosec
		RowCount:      uint32(rowCount),      //nolint: gosec
		PayloadOffset: PayloadOffset,
	}, nil
}

// ParseHeader parses a header from the first HeaderSize bytes of data.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	h := &Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return nil, err
	}

	return h, nil
}

// Parse parses the header from a byte slice.
// It returns an error if the data is not exactly 32 bytes or if the flag is invalid.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	// Options is always little-endian, it carries the endianness bit
	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.RowEncoding = data[2]
	h.Flag.Compression = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()

	h.SpikeHeight = engine.Uint32(data[4:8])
	h.SpikeDistance = engine.Uint32(data[8:12])
	h.RowCount = engine.Uint32(data[12:16])
	h.PayloadOffset = engine.Uint32(data[16:20])
	h.PayloadLength = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	if h.PayloadOffset < HeaderSize {
		return fmt.Errorf("%w: %d", errs.ErrInvalidPayloadOffset, h.PayloadOffset)
	}

	if h.PayloadLength > MaxPayloadLength {
		return fmt.Errorf("%w: %d exceeds %d", errs.ErrInvalidPayloadLength, h.PayloadLength, MaxPayloadLength)
	}

	return nil
}

// Bytes serializes the Header into a new byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.WriteToSlice(b)

	return b
}

// WriteToSlice serializes the Header into b, which must hold at least
// HeaderSize bytes.
func (h *Header) WriteToSlice(b []byte) {
	_ = b[HeaderSize-1]

	engine := h.GetEndianEngine()

	binary.LittleEndian.PutUint16(b[0:2], h.Flag.Options)
	b[2] = h.Flag.RowEncoding
	b[3] = h.Flag.Compression
	engine.PutUint32(b[4:8], h.SpikeHeight)
	engine.PutUint32(b[8:12], h.SpikeDistance)
	engine.PutUint32(b[12:16], h.RowCount)
	engine.PutUint32(b[16:20], h.PayloadOffset)
	engine.PutUint32(b[20:24], h.PayloadLength)
	engine.PutUint64(b[24:32], h.Checksum)
}

// GetEndianEngine returns the endian engine selected by the header flag.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	return endian.ForFlag(h.Flag.IsBigEndian())
}
