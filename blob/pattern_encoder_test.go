package blob

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spikeknit/spikeknit/errs"
	"github.com/spikeknit/spikeknit/format"
	"github.com/spikeknit/spikeknit/internal/hash"
	"github.com/spikeknit/spikeknit/pattern"
	"github.com/spikeknit/spikeknit/section"
)

var allEncodings = []format.EncodingType{format.TypeRaw, format.TypeVarint}

var allCompressions = []format.CompressionType{
	format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
}

func TestNewPatternEncoder_Defaults(t *testing.T) {
	enc, err := NewPatternEncoder()
	require.NoError(t, err)

	flag := enc.Config().Flag()
	require.True(t, flag.IsLittleEndian())
	require.Equal(t, format.TypeVarint, flag.GetRowEncoding())
	require.Equal(t, format.CompressionNone, flag.GetCompression())
}

func TestNewPatternEncoder_InvalidOptions(t *testing.T) {
	_, err := NewPatternEncoder(WithRowEncoding(format.EncodingType(7)))
	require.ErrorIs(t, err, errs.ErrInvalidEncodingType)

	_, err = NewPatternEncoder(WithCompression(format.CompressionType(0)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestPatternEncoder_RoundTrip(t *testing.T) {
	p := pattern.MustGenerate(5, 3)

	for _, enc := range allEncodings {
		for _, comp := range allCompressions {
			for _, big := range []bool{false, true} {
				name := fmt.Sprintf("%s/%s/big=%v", enc, comp, big)
				t.Run(name, func(t *testing.T) {
					opts := []PatternEncoderOption{WithRowEncoding(enc), WithCompression(comp)}
					if big {
						opts = append(opts, WithBigEndian())
					}

					data, err := Encode(p, opts...)
					require.NoError(t, err)

					decoded, err := Decode(data)
					require.NoError(t, err)
					require.True(t, p.Equal(decoded))
					require.Equal(t, p.Fingerprint(), decoded.Fingerprint())
				})
			}
		}
	}
}

func TestPatternEncoder_ParamGrid(t *testing.T) {
	enc, err := NewPatternEncoder(WithCompression(format.CompressionS2))
	require.NoError(t, err)

	for h := 1; h <= 8; h++ {
		for d := 1; d <= 6; d++ {
			p := pattern.MustGenerate(h, d)

			data, err := enc.Encode(p)
			require.NoError(t, err)

			decoded, err := Decode(data)
			require.NoError(t, err, "h=%d d=%d", h, d)
			require.True(t, p.Equal(decoded), "h=%d d=%d", h, d)
		}
	}
}

func TestPatternEncoder_HeaderFields(t *testing.T) {
	p := pattern.MustGenerate(2, 1)

	data, err := Encode(p, WithRowEncoding(format.TypeRaw))
	require.NoError(t, err)

	h, err := section.ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, uint32(2), h.SpikeHeight)
	require.Equal(t, uint32(1), h.SpikeDistance)
	require.Equal(t, uint32(8), h.RowCount)
	require.Equal(t, uint32(section.HeaderSize), h.PayloadOffset)
	require.Equal(t, int(h.PayloadLength), len(data)-section.HeaderSize)
	require.Equal(t, hash.Sum(data[section.HeaderSize:]), h.Checksum)
}

func TestPatternEncoder_Deterministic(t *testing.T) {
	p := pattern.MustGenerate(4, 4)

	a, err := Encode(p, WithCompression(format.CompressionZstd))
	require.NoError(t, err)
	b, err := Encode(pattern.MustGenerate(4, 4), WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestPatternEncoder_ConcurrentEncode(t *testing.T) {
	enc, err := NewPatternEncoder(WithCompression(format.CompressionLZ4))
	require.NoError(t, err)

	p := pattern.MustGenerate(6, 2)
	want, err := enc.Encode(p)
	require.NoError(t, err)

	results := make(chan []byte, 8)
	for range 8 {
		go func() {
			data, err := enc.Encode(p)
			if err != nil {
				results <- nil
				return
			}
			results <- data
		}()
	}

	for range 8 {
		require.True(t, bytes.Equal(want, <-results))
	}
}

func TestInspect(t *testing.T) {
	p := pattern.MustGenerate(3, 2)

	data, err := Encode(p, WithBigEndian(), WithRowEncoding(format.TypeRaw), WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	info, err := Inspect(data)
	require.NoError(t, err)
	require.Equal(t, p.Params(), info.Params)
	require.Equal(t, p.Len(), info.RowCount)
	require.True(t, info.BigEndian)
	require.Equal(t, format.TypeRaw, info.RowEncoding)
	require.Equal(t, format.CompressionZstd, info.Compression)
	require.Equal(t, len(data), info.BlobSize)
	require.Equal(t, len(data)-section.HeaderSize, info.PayloadSize)
	require.Contains(t, info.String(), "height=3 distance=2")
	require.Contains(t, info.String(), "big-endian")
}

func TestDecode_Errors(t *testing.T) {
	p := pattern.MustGenerate(2, 2)
	valid, err := Encode(p)
	require.NoError(t, err)

	corrupt := func(mutate func(b []byte) []byte) []byte {
		return mutate(bytes.Clone(valid))
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short header", valid[:10], errs.ErrInvalidHeaderSize},
		{"bad magic", corrupt(func(b []byte) []byte { b[1] = 0x00; return b }), errs.ErrInvalidMagicNumber},
		{"bad compression", corrupt(func(b []byte) []byte { b[3] = 0x9; return b }), errs.ErrInvalidCompression},
		{"offset past end", corrupt(func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[16:20], uint32(len(b)+1))
			return b
		}), errs.ErrInvalidPayloadOffset},
		{"row count mismatch", corrupt(func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[12:16], 9)
			return b
		}), errs.ErrRowCountMismatch},
		{"zero height", corrupt(func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[4:8], 0)
			return b
		}), errs.ErrInvalidSpikeHeight},
		{"flipped payload bit", corrupt(func(b []byte) []byte { b[len(b)-1] ^= 0x01; return b }), errs.ErrChecksumMismatch},
		{"truncated payload", valid[:len(valid)-1], errs.ErrInvalidPayloadLength},
		{"wrong distance", corrupt(func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[8:12], 3)
			return b
		}), errs.ErrRowWidthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func BenchmarkPatternEncoder_Encode(b *testing.B) {
	p := pattern.MustGenerate(20, 10)

	for _, comp := range allCompressions {
		enc, err := NewPatternEncoder(WithCompression(comp))
		require.NoError(b, err)

		b.Run(comp.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = enc.Encode(p)
			}
		})
	}
}

func BenchmarkPatternDecoder_Decode(b *testing.B) {
	p := pattern.MustGenerate(20, 10)

	for _, comp := range allCompressions {
		data, err := Encode(p, WithCompression(comp))
		require.NoError(b, err)

		b.Run(comp.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = Decode(data)
			}
		})
	}
}
