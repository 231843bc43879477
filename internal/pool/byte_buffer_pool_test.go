package pool

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(128)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 128, bb.Cap())
}

func TestByteBuffer_Writes(t *testing.T) {
	bb := NewByteBuffer(PayloadBufferDefaultSize)

	bb.MustWrite([]byte("k8"))
	require.NoError(t, bb.WriteByte(','))
	n, err := bb.Write([]byte(" sk2p"))
	require.NoError(t, err)

	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("k8, sk2p"), bb.Bytes())
	assert.Equal(t, 8, bb.Len())

	var out bytes.Buffer
	written, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(8), written)
	assert.Equal(t, "k8, sk2p", out.String())
}

type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("kyok"))

	_, err := bb.WriteTo(errorWriter{})
	require.Error(t, err)
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.MustWrite([]byte("some data"))
	capBefore := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(100)
		bb.Grow(50)
		assert.Equal(t, 100, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(10)
		bb.MustWrite(make([]byte, 10))
		bb.Grow(1)
		assert.Equal(t, 10+PayloadBufferDefaultSize, bb.Cap())
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * PayloadBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.MustWrite(make([]byte, size))
		bb.Grow(1)
		assert.Equal(t, size+size/4, bb.Cap())
	})

	t.Run("request larger than growth step", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(3 * PayloadBufferDefaultSize)
		assert.GreaterOrEqual(t, bb.Cap(), 3*PayloadBufferDefaultSize)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(4)
		bb.MustWrite([]byte("k1, "))
		bb.Grow(100)
		assert.Equal(t, []byte("k1, "), bb.Bytes())
	})
}

func TestPayloadBuffer_Reuse(t *testing.T) {
	bb := GetPayloadBuffer()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("row payload"))
	PutPayloadBuffer(bb)

	again := GetPayloadBuffer()
	require.NotNil(t, again)
	assert.Equal(t, 0, again.Len(), "pooled buffers come back empty")
	PutPayloadBuffer(again)

	PutPayloadBuffer(nil)
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	big := p.Get()
	big.Grow(1024)
	big.MustWrite([]byte("x"))
	p.Put(big)

	for range 10 {
		bb := p.Get()
		assert.LessOrEqual(t, bb.Cap(), 32, "oversized buffers are not retained")
		p.Put(bb)
	}
}

func TestByteBufferPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for range 100 {
				bb := GetPayloadBuffer()
				bb.MustWrite([]byte{byte(id)})
				assert.Equal(t, 1, bb.Len())
				PutPayloadBuffer(bb)
			}
		}(i)
	}
	wg.Wait()
}

func BenchmarkPool_GetWritePut(b *testing.B) {
	data := bytes.Repeat([]byte("k1, kyok, "), 16)

	b.ReportAllocs()
	for b.Loop() {
		bb := GetPayloadBuffer()
		bb.MustWrite(data)
		PutPayloadBuffer(bb)
	}
}
