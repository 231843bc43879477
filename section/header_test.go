package section

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spikeknit/spikeknit/errs"
	"github.com/spikeknit/spikeknit/format"
)

func TestNewFlag(t *testing.T) {
	flag := NewFlag()

	require.True(t, flag.IsValidMagicNumber())
	require.True(t, flag.IsLittleEndian())
	require.False(t, flag.IsBigEndian())
	require.Equal(t, format.TypeVarint, flag.GetRowEncoding())
	require.Equal(t, format.CompressionNone, flag.GetCompression())
	require.NoError(t, flag.Validate())

	flag.WithBigEndian()
	require.True(t, flag.IsBigEndian())
	require.Equal(t, uint16(MagicPatternV1Opt), flag.GetMagicNumber())

	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())
}

func TestFlag_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *Flag)
		want   error
	}{
		{"bad magic", func(f *Flag) { f.Options = 0xEA10 }, errs.ErrInvalidMagicNumber},
		{"reserved bit", func(f *Flag) { f.Options |= 0x0004 }, errs.ErrInvalidMagicNumber},
		{"bad encoding", func(f *Flag) { f.RowEncoding = 0x7 }, errs.ErrInvalidEncodingType},
		{"bad compression", func(f *Flag) { f.Compression = 0 }, errs.ErrInvalidCompression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := NewFlag()
			tt.mutate(&flag)
			require.ErrorIs(t, flag.Validate(), tt.want)
		})
	}
}

func TestNewHeader(t *testing.T) {
	h, err := NewHeader(2, 1, 8)
	require.NoError(t, err)
	require.Equal(t, uint32(2), h.SpikeHeight)
	require.Equal(t, uint32(1), h.SpikeDistance)
	require.Equal(t, uint32(8), h.RowCount)
	require.Equal(t, uint32(HeaderSize), h.PayloadOffset)

	_, err = NewHeader(0, 1, 4)
	require.ErrorIs(t, err, errs.ErrInvalidSpikeHeight)

	_, err = NewHeader(1, 0, 6)
	require.ErrorIs(t, err, errs.ErrInvalidSpikeDistance)

	_, err = NewHeader(1, 1, -1)
	require.ErrorIs(t, err, errs.ErrRowCountMismatch)
}

func TestHeader_RoundTrip(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		h, err := NewHeader(5, 3, 14)
		require.NoError(t, err)
		if bigEndian {
			h.Flag.WithBigEndian()
		}
		h.Flag.SetRowEncoding(format.TypeRaw)
		h.Flag.SetCompression(format.CompressionS2)
		h.PayloadLength = 1234
		h.Checksum = 0xDEADBEEFCAFEF00D

		data := h.Bytes()
		require.Len(t, data, HeaderSize)

		parsed, err := ParseHeader(data)
		require.NoError(t, err)
		require.Equal(t, h, parsed)
		require.Equal(t, bigEndian, parsed.Flag.IsBigEndian())
	}
}

func TestHeader_OptionsAlwaysLittleEndian(t *testing.T) {
	h, err := NewHeader(1, 1, 6)
	require.NoError(t, err)
	h.Flag.WithBigEndian()

	data := h.Bytes()
	require.Equal(t, uint16(MagicPatternV1Opt|EndiannessMask), binary.LittleEndian.Uint16(data[0:2]))
	require.Equal(t, uint32(1), binary.BigEndian.Uint32(data[4:8]))
}

func TestParseHeader_Errors(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	_, err = ParseHeader(make([]byte, HeaderSize))
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)

	h, err := NewHeader(1, 1, 6)
	require.NoError(t, err)
	h.PayloadOffset = 16
	_, err = ParseHeader(h.Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidPayloadOffset)

	h.PayloadOffset = HeaderSize
	h.PayloadLength = MaxPayloadLength + 1
	_, err = ParseHeader(h.Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidPayloadLength)

	var exact Header
	require.ErrorIs(t, exact.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)
}
