package compress

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spikeknit/spikeknit/errs"
	"github.com/spikeknit/spikeknit/format"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"Zstd": NewZstdCompressor(),
		"S2":   NewS2Compressor(),
		"LZ4":  NewLZ4Compressor(),
	}
}

// rowLikePayload mimics a varint row payload: short repeated entries.
func rowLikePayload(rows int) []byte {
	var buf []byte
	for i := range rows {
		buf = append(buf, 4, byte(format.StitchGap), byte(i%7+1), byte(format.StitchKYOK), 1,
			byte(format.StitchPlain), 5, byte(format.StitchSK2P), 1)
	}

	return buf
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"single_byte", []byte{0x42}},
		{"short_text", []byte("k8, sk2p, kyok")},
		{"row_payload", rowLikePayload(40)},
		{"large_row_payload", rowLikePayload(4000)},
		{"highly_compressible", make([]byte, 256*1024)},
		{"incompressible", func() []byte {
			data := make([]byte, 1024)
			x := uint32(2463534242)
			for i := range data {
				x ^= x << 13
				x ^= x >> 17
				x ^= x << 5
				data[i] = byte(x)
			}

			return data
		}()},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)

					decompressed, err := codec.Decompress(compressed, len(tc.data))
					require.NoError(t, err)
					require.Len(t, decompressed, len(tc.data))
					require.True(t, bytes.Equal(tc.data, decompressed))
				})
			}
		})
	}
}

func TestAllCodecs_LengthMismatch(t *testing.T) {
	data := rowLikePayload(50)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			_, err = codec.Decompress(compressed, len(data)+1)
			require.Error(t, err)

			_, err = codec.Decompress(compressed, len(data)-1)
			require.Error(t, err)
		})
	}

	_, err := NewNoOpCompressor().Decompress([]byte{1, 2, 3}, 2)
	require.ErrorIs(t, err, errs.ErrInvalidPayloadLength)
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{"random_bytes", []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"text_as_compressed", []byte("this is not compressed data")},
		{"corrupted_header", []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}},
	}

	for codecName, codec := range getAllCodecs() {
		if codecName == "NoOp" {
			continue
		}

		t.Run(codecName, func(t *testing.T) {
			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data, 64)
					require.Error(t, err)
				})
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	data := rowLikePayload(200)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			var wg sync.WaitGroup
			errCh := make(chan error, 16)

			for range 16 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					compressed, err := codec.Compress(data)
					if err != nil {
						errCh <- err
						return
					}
					out, err := codec.Decompress(compressed, len(data))
					if err != nil {
						errCh <- err
						return
					}
					if !bytes.Equal(data, out) {
						errCh <- errs.ErrChecksumMismatch
					}
				}()
			}
			wg.Wait()
			close(errCh)

			for err := range errCh {
				require.NoError(t, err)
			}
		})
	}
}

func TestLiteralBlock(t *testing.T) {
	for _, n := range []int{1, 14, 15, 16, 269, 270, 600} {
		data := bytes.Repeat([]byte{0xA5}, n)
		for i := range data {
			data[i] ^= byte(i * 31)
		}

		out, err := NewLZ4Compressor().Decompress(literalBlock(data), n)
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, data, out)
	}
}

func TestCompressionStats(t *testing.T) {
	stats := CompressionStats{Algorithm: format.CompressionZstd, OriginalSize: 200, CompressedSize: 50}
	require.InDelta(t, 0.25, stats.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, stats.SpaceSavings(), 1e-9)

	require.Zero(t, CompressionStats{}.CompressionRatio())

	grown := CompressionStats{OriginalSize: 10, CompressedSize: 20}
	require.Less(t, grown.SpaceSavings(), 0.0)
}

func TestMeasure(t *testing.T) {
	data := make([]byte, 4096)

	stats, err := Measure(format.CompressionS2, data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionS2, stats.Algorithm)
	require.Equal(t, int64(4096), stats.OriginalSize)
	require.Less(t, stats.CompressedSize, stats.OriginalSize)

	none, err := Measure(format.CompressionNone, data)
	require.NoError(t, err)
	require.Equal(t, none.OriginalSize, none.CompressedSize)

	_, err = Measure(format.CompressionType(42), data)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}
