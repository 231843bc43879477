package encoding

import (
	"encoding/binary"
	"iter"

	"github.com/spikeknit/spikeknit/internal/pool"
	"github.com/spikeknit/spikeknit/pattern"
)

// varintEntrySize is a kind byte plus the shortest uvarint.
const varintEntrySize = 1 + 1

// RowVarintEncoder writes entry counts and stitch counts as unsigned varints.
// Counts in a pattern are small, so almost every entry takes two bytes.
type RowVarintEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

var _ RowEncoder = (*RowVarintEncoder)(nil)

// NewRowVarintEncoder creates a varint row encoder. Varints have no byte
// order, so no endian engine is needed.
func NewRowVarintEncoder() *RowVarintEncoder {
	return &RowVarintEncoder{
		buf: pool.GetPayloadBuffer(),
	}
}

// Write encodes a single row.
//
// Panics if Finish() has been called.
func (e *RowVarintEncoder) Write(row pattern.Row) error {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	entries, err := entryCount(row)
	if err != nil {
		return err
	}

	e.buf.Grow(binary.MaxVarintLen32 + row.Len()*(1+binary.MaxVarintLen32))
	e.buf.B = binary.AppendUvarint(e.buf.B, uint64(entries))

	for s := range row.Forward() {
		c, err := stitchCount(s)
		if err != nil {
			return err
		}
		e.buf.B = append(e.buf.B, byte(s.Kind()))
		e.buf.B = binary.AppendUvarint(e.buf.B, uint64(c))
	}
	e.count++

	return nil
}

// WriteSlice encodes rows in order.
func (e *RowVarintEncoder) WriteSlice(rows []pattern.Row) error {
	for _, row := range rows {
		if err := e.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// Bytes returns the encoded payload.
func (e *RowVarintEncoder) Bytes() []byte {
	if e.buf == nil {
		return nil
	}

	return e.buf.Bytes()
}

// Len returns the number of rows encoded.
func (e *RowVarintEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes.
func (e *RowVarintEncoder) Size() int {
	if e.buf == nil {
		return 0
	}

	return e.buf.Len()
}

// Reset clears the encoder state, retaining the buffer.
func (e *RowVarintEncoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.count = 0
}

// Finish returns the buffer to the pool.
func (e *RowVarintEncoder) Finish() {
	if e.buf != nil {
		pool.PutPayloadBuffer(e.buf)
		e.buf = nil
	}
}

// RowVarintDecoder reads payloads written by RowVarintEncoder.
type RowVarintDecoder struct{}

var _ RowDecoder = RowVarintDecoder{}

// NewRowVarintDecoder creates a varint row decoder.
func NewRowVarintDecoder() RowVarintDecoder {
	return RowVarintDecoder{}
}

// All yields count rows decoded from data.
func (d RowVarintDecoder) All(data []byte, count int) iter.Seq2[pattern.Row, error] {
	return decodeRows(data, count, binary.Uvarint, varintEntrySize)
}

// Decode decodes count rows from data.
func (d RowVarintDecoder) Decode(data []byte, count int) ([]pattern.Row, error) {
	return collectRows(d.All(data, count), count, data)
}
