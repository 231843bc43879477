package encoding

import (
	"iter"

	"github.com/spikeknit/spikeknit/endian"
	"github.com/spikeknit/spikeknit/internal/pool"
	"github.com/spikeknit/spikeknit/pattern"
)

// rawEntrySize is a kind byte plus a uint32 count.
const rawEntrySize = 1 + 4

// RowRawEncoder writes entry counts and stitch counts as fixed-width uint32
// values in the byte order of the given endian engine.
type RowRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ RowEncoder = (*RowRawEncoder)(nil)

// NewRowRawEncoder creates a raw row encoder using the specified endian engine.
func NewRowRawEncoder(engine endian.EndianEngine) *RowRawEncoder {
	return &RowRawEncoder{
		engine: engine,
		buf:    pool.GetPayloadBuffer(),
	}
}

// Write encodes a single row.
//
// Panics if Finish() has been called.
func (e *RowRawEncoder) Write(row pattern.Row) error {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	entries, err := entryCount(row)
	if err != nil {
		return err
	}

	e.buf.Grow(4 + row.Len()*rawEntrySize)
	e.buf.B = e.engine.AppendUint32(e.buf.B, entries)

	for s := range row.Forward() {
		c, err := stitchCount(s)
		if err != nil {
			return err
		}
		e.buf.B = append(e.buf.B, byte(s.Kind()))
		e.buf.B = e.engine.AppendUint32(e.buf.B, c)
	}
	e.count++

	return nil
}

// WriteSlice encodes rows in order.
func (e *RowRawEncoder) WriteSlice(rows []pattern.Row) error {
	for _, row := range rows {
		if err := e.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// Bytes returns the encoded payload.
func (e *RowRawEncoder) Bytes() []byte {
	if e.buf == nil {
		return nil
	}

	return e.buf.Bytes()
}

// Len returns the number of rows encoded.
func (e *RowRawEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes.
func (e *RowRawEncoder) Size() int {
	if e.buf == nil {
		return 0
	}

	return e.buf.Len()
}

// Reset clears the encoder state, retaining the buffer.
func (e *RowRawEncoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.count = 0
}

// Finish returns the buffer to the pool.
func (e *RowRawEncoder) Finish() {
	if e.buf != nil {
		pool.PutPayloadBuffer(e.buf)
		e.buf = nil
	}
}

// RowRawDecoder reads payloads written by RowRawEncoder.
type RowRawDecoder struct {
	engine endian.EndianEngine
}

var _ RowDecoder = RowRawDecoder{}

// NewRowRawDecoder creates a raw row decoder using the specified endian engine.
func NewRowRawDecoder(engine endian.EndianEngine) RowRawDecoder {
	return RowRawDecoder{engine: engine}
}

// All yields count rows decoded from data.
func (d RowRawDecoder) All(data []byte, count int) iter.Seq2[pattern.Row, error] {
	return decodeRows(data, count, d.readCount, rawEntrySize)
}

// Decode decodes count rows from data.
func (d RowRawDecoder) Decode(data []byte, count int) ([]pattern.Row, error) {
	return collectRows(d.All(data, count), count, data)
}

func (d RowRawDecoder) readCount(data []byte) (uint64, int) {
	if len(data) < 4 {
		return 0, 0
	}

	return uint64(d.engine.Uint32(data)), 4
}
