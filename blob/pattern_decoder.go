package blob

import (
	"fmt"

	"github.com/spikeknit/spikeknit/compress"
	"github.com/spikeknit/spikeknit/encoding"
	"github.com/spikeknit/spikeknit/errs"
	"github.com/spikeknit/spikeknit/internal/hash"
	"github.com/spikeknit/spikeknit/pattern"
	"github.com/spikeknit/spikeknit/section"
)

// PatternDecoder decodes a pattern blob back into a Pattern.
//
// The decoder handles:
//   - Header parsing with validation
//   - Payload decompression
//   - Checksum verification
//   - Row decoding and pattern invariant checks
//
// Note: The PatternDecoder is NOT thread-safe.
type PatternDecoder struct {
	data   []byte
	header *section.Header
}

// NewPatternDecoder creates a decoder for data.
//
// The header is parsed and validated here; the payload is not touched until
// Decode is called.
//
// Returns:
//   - *PatternDecoder: Decoder ready for Decode
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber, ErrInvalidEncodingType,
//     ErrInvalidCompression, ErrInvalidPayloadOffset or ErrInvalidPayloadLength
func NewPatternDecoder(data []byte) (*PatternDecoder, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if int64(header.PayloadOffset) > int64(len(data)) {
		return nil, fmt.Errorf("%w: offset %d exceeds blob length %d",
			errs.ErrInvalidPayloadOffset, header.PayloadOffset, len(data))
	}

	return &PatternDecoder{data: data, header: header}, nil
}

// Header returns a copy of the parsed header.
func (d *PatternDecoder) Header() section.Header {
	return *d.header
}

// Params returns the generation parameters recorded in the header.
func (d *PatternDecoder) Params() pattern.Params {
	return pattern.Params{
		SpikeHeight:   int(d.header.SpikeHeight),
		SpikeDistance: int(d.header.SpikeDistance),
	}
}

// Payload decompresses the row payload and verifies its checksum.
func (d *PatternDecoder) Payload() ([]byte, error) {
	codec, err := compress.GetCodec(d.header.Flag.GetCompression())
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(d.data[d.header.PayloadOffset:], int(d.header.PayloadLength))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress row payload: %w", err)
	}

	if sum := hash.Sum(payload); sum != d.header.Checksum {
		return nil, fmt.Errorf("%w: got %016x, header says %016x", errs.ErrChecksumMismatch, sum, d.header.Checksum)
	}

	return payload, nil
}

// Decode decodes the blob into a Pattern.
//
// Returns:
//   - pattern.Pattern: The decoded pattern, equal to the one encoded
//   - error: Payload errors (see Payload), ErrRowCountMismatch, row decoding
//     errors from the encoding package, or pattern invariant violations
func (d *PatternDecoder) Decode() (pattern.Pattern, error) {
	params := d.Params()
	if err := params.Validate(); err != nil {
		return pattern.Pattern{}, err
	}

	if int(d.header.RowCount) != params.RowCount() {
		return pattern.Pattern{}, fmt.Errorf("%w: header has %d rows, spike height %d needs %d",
			errs.ErrRowCountMismatch, d.header.RowCount, params.SpikeHeight, params.RowCount())
	}

	payload, err := d.Payload()
	if err != nil {
		return pattern.Pattern{}, err
	}

	rowDecoder, err := encoding.NewRowDecoder(d.header.Flag.GetRowEncoding(), d.header.GetEndianEngine())
	if err != nil {
		return pattern.Pattern{}, err
	}

	rows, err := rowDecoder.Decode(payload, int(d.header.RowCount))
	if err != nil {
		return pattern.Pattern{}, fmt.Errorf("failed to decode rows: %w", err)
	}

	return pattern.FromRows(params, rows)
}

// Decode decodes a pattern blob in one call.
func Decode(data []byte) (pattern.Pattern, error) {
	dec, err := NewPatternDecoder(data)
	if err != nil {
		return pattern.Pattern{}, err
	}

	return dec.Decode()
}
