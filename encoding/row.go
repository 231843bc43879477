package encoding

import (
	"fmt"
	"iter"
	"math"

	"github.com/spikeknit/spikeknit/endian"
	"github.com/spikeknit/spikeknit/errs"
	"github.com/spikeknit/spikeknit/format"
	"github.com/spikeknit/spikeknit/internal/pool"
	"github.com/spikeknit/spikeknit/pattern"
)

// RowEncoder appends pattern rows to a row payload.
//
// Every row is written as an entry count followed by one entry per stitch
// in forward order. An entry is a kind byte and a repeat count; KYOK and
// SK2P are written with count 1.
type RowEncoder interface {
	// Bytes returns the encoded payload. The slice is owned by the encoder
	// and is valid until Reset or Finish.
	Bytes() []byte

	// Len returns the number of rows written.
	Len() int

	// Size returns the payload size in bytes.
	Size() int

	// Reset clears the payload and keeps the encoder usable.
	Reset()

	// Finish releases the pooled buffer. The encoder must not be used afterwards.
	Finish()

	// Write appends a single row.
	Write(row pattern.Row) error

	// WriteSlice appends rows in order, stopping at the first error.
	WriteSlice(rows []pattern.Row) error
}

// RowDecoder reads rows back from a payload produced by the matching RowEncoder.
type RowDecoder interface {
	// All yields exactly count rows. Decoding stops at the first error,
	// which is yielded with a zero Row. Bytes left after the last row are
	// reported as ErrTrailingPayloadBytes.
	All(data []byte, count int) iter.Seq2[pattern.Row, error]

	// Decode collects All into a slice.
	Decode(data []byte, count int) ([]pattern.Row, error)
}

// NewRowEncoder returns the encoder for the given row encoding.
func NewRowEncoder(encoding format.EncodingType, engine endian.EndianEngine) (RowEncoder, error) {
	switch encoding {
	case format.TypeRaw:
		return NewRowRawEncoder(engine), nil
	case format.TypeVarint:
		return NewRowVarintEncoder(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidEncodingType, encoding)
	}
}

// NewRowDecoder returns the decoder for the given row encoding.
func NewRowDecoder(encoding format.EncodingType, engine endian.EndianEngine) (RowDecoder, error) {
	switch encoding {
	case format.TypeRaw:
		return NewRowRawDecoder(engine), nil
	case format.TypeVarint:
		return NewRowVarintDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidEncodingType, encoding)
	}
}

// maxStitchCount bounds decoded counts so they fit an int on every platform.
const maxStitchCount = math.MaxInt32

var stitchScratch = pool.NewSlicePool[pattern.Stitch]()

// countReader reads one count from the front of data and reports how many
// bytes it consumed; n <= 0 means data was too short or malformed.
type countReader func(data []byte) (v uint64, n int)

func checkCount(v uint64) (int, error) {
	if v > maxStitchCount {
		return 0, fmt.Errorf("%w: %d", errs.ErrStitchCountOutOfRange, v)
	}

	return int(v), nil
}

// decodeRows drives both decoders. minEntrySize is the smallest possible
// encoded entry and caps the entry count against the remaining bytes.
func decodeRows(data []byte, count int, read countReader, minEntrySize int) iter.Seq2[pattern.Row, error] {
	return func(yield func(pattern.Row, error) bool) {
		fail := func(err error) { yield(pattern.Row{}, err) }

		if count < 0 {
			fail(fmt.Errorf("%w: %d", errs.ErrRowCountMismatch, count))
			return
		}

		off := 0
		for i := range count {
			raw, n := read(data[off:])
			if n <= 0 {
				fail(fmt.Errorf("%w: row %d header at byte %d", errs.ErrTruncatedPayload, i, off))
				return
			}
			off += n

			entries, err := checkCount(raw)
			if err != nil {
				fail(err)
				return
			}
			if uint64(entries)*uint64(minEntrySize) > uint64(len(data)-off) {
				fail(fmt.Errorf("%w: row %d needs %d entries", errs.ErrTruncatedPayload, i, entries))
				return
			}

			stitches, cleanup := stitchScratch.Get(entries)
			for range entries {
				if off >= len(data) {
					cleanup()
					fail(fmt.Errorf("%w: row %d", errs.ErrTruncatedPayload, i))

					return
				}
				kind := format.StitchKind(data[off])
				off++

				raw, n := read(data[off:])
				if n <= 0 {
					cleanup()
					fail(fmt.Errorf("%w: row %d stitch count", errs.ErrTruncatedPayload, i))

					return
				}
				off += n

				c, err := checkCount(raw)
				if err != nil {
					cleanup()
					fail(err)

					return
				}

				s, err := pattern.NewStitch(kind, c)
				if err != nil {
					cleanup()
					fail(fmt.Errorf("row %d: %w", i, err))

					return
				}
				stitches = append(stitches, s)
			}

			row, err := pattern.NewRow(stitches...)
			cleanup()
			if err != nil {
				fail(fmt.Errorf("row %d: %w", i, err))
				return
			}

			if !yield(row, nil) {
				return
			}
		}

		if off != len(data) {
			fail(fmt.Errorf("%w: %d bytes", errs.ErrTrailingPayloadBytes, len(data)-off))
		}
	}
}

// collectRows drains seq. Every row takes at least one payload byte, so the
// preallocation is bounded by the payload size rather than the header count.
func collectRows(seq iter.Seq2[pattern.Row, error], count int, data []byte) ([]pattern.Row, error) {
	rows := make([]pattern.Row, 0, max(min(count, len(data)), 0))
	for row, err := range seq {
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func entryCount(row pattern.Row) (uint32, error) {
	n := row.Len()
	if uint64(n) > maxStitchCount {
		return 0, fmt.Errorf("%w: %d stitches in row", errs.ErrStitchCountOutOfRange, n)
	}

	return uint32(n), nil //nolint: gosec
}

func stitchCount(s pattern.Stitch) (uint32, error) {
	c := s.Count()
	if c < 0 || uint64(c) > maxStitchCount {
		return 0, fmt.Errorf("%w: %s", errs.ErrStitchCountOutOfRange, s)
	}

	return uint32(c), nil //nolint: gosec
}
