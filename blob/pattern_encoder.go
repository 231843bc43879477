package blob

import (
	"fmt"

	"github.com/spikeknit/spikeknit/compress"
	"github.com/spikeknit/spikeknit/encoding"
	"github.com/spikeknit/spikeknit/errs"
	"github.com/spikeknit/spikeknit/internal/hash"
	"github.com/spikeknit/spikeknit/internal/options"
	"github.com/spikeknit/spikeknit/pattern"
	"github.com/spikeknit/spikeknit/section"
)

// PatternEncoder turns patterns into pattern blobs.
//
// A PatternEncoder holds only its configuration, so one encoder may be
// reused and shared between goroutines.
type PatternEncoder struct {
	config *PatternEncoderConfig
}

// NewPatternEncoder creates an encoder with the given options applied over
// the defaults.
//
// Returns:
//   - *PatternEncoder: Encoder ready for Encode
//   - error: ErrInvalidEncodingType or ErrInvalidCompression from an option
func NewPatternEncoder(opts ...PatternEncoderOption) (*PatternEncoder, error) {
	config := NewPatternEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &PatternEncoder{config: config}, nil
}

// Config returns the encoder configuration.
func (e *PatternEncoder) Config() *PatternEncoderConfig {
	return e.config
}

// Encode serializes p into a new blob.
//
// The row payload is encoded, checksummed, compressed and appended to the
// 32-byte header. The returned slice is owned by the caller.
func (e *PatternEncoder) Encode(p pattern.Pattern) ([]byte, error) {
	params := p.Params()

	header, err := section.NewHeader(params.SpikeHeight, params.SpikeDistance, p.Len())
	if err != nil {
		return nil, err
	}
	header.Flag = e.config.flag

	rowEncoder, err := encoding.NewRowEncoder(header.Flag.GetRowEncoding(), e.config.engine)
	if err != nil {
		return nil, err
	}
	defer rowEncoder.Finish()

	if err := rowEncoder.WriteSlice(p.Rows()); err != nil {
		return nil, fmt.Errorf("failed to encode rows: %w", err)
	}

	payload := rowEncoder.Bytes()
	if len(payload) > section.MaxPayloadLength {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrInvalidPayloadLength, len(payload))
	}
	header.PayloadLength = uint32(len(payload)) //nolint: gosec
	header.Checksum = hash.Sum(payload)

	codec, err := compress.GetCodec(header.Flag.GetCompression())
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress row payload: %w", err)
	}

	out := make([]byte, section.HeaderSize, section.HeaderSize+len(compressed))
	header.WriteToSlice(out)

	return append(out, compressed...), nil
}

// Encode serializes p with a one-off encoder built from opts.
func Encode(p pattern.Pattern, opts ...PatternEncoderOption) ([]byte, error) {
	enc, err := NewPatternEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(p)
}
