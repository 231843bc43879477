package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStitchKind_String(t *testing.T) {
	tests := []struct {
		kind StitchKind
		want string
	}{
		{StitchPlain, "Plain"},
		{StitchKYOK, "KYOK"},
		{StitchSK2P, "SK2P"},
		{StitchGap, "Gap"},
		{StitchKind(0), "Unknown"},
		{StitchKind(9), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.kind.String())

			parsed, ok := ParseStitchKind(tt.want)
			if tt.kind.Valid() {
				require.True(t, ok)
				require.Equal(t, tt.kind, parsed)
			} else {
				require.False(t, ok)
			}
		})
	}
}

func TestStitchKind_Repeatable(t *testing.T) {
	require.True(t, StitchPlain.Repeatable())
	require.True(t, StitchGap.Repeatable())
	require.False(t, StitchKYOK.Repeatable())
	require.False(t, StitchSK2P.Repeatable())
}

func TestSection_String(t *testing.T) {
	require.Equal(t, "TopBorder", SectionTopBorder.String())
	require.Equal(t, "Ascending", SectionAscending.String())
	require.Equal(t, "MiddleBorder", SectionMiddleBorder.String())
	require.Equal(t, "Descending", SectionDescending.String())
	require.Equal(t, "Unknown", Section(0).String())
}

func TestEncodingType_String(t *testing.T) {
	require.Equal(t, "Raw", TypeRaw.String())
	require.Equal(t, "Varint", TypeVarint.String())
	require.Equal(t, "Unknown", EncodingType(0x7).String())
}

func TestCompressionType(t *testing.T) {
	for _, name := range []string{"none", "zstd", "s2", "lz4"} {
		c, ok := ParseCompressionType(name)
		require.True(t, ok, name)
		require.NotEqual(t, "Unknown", c.String())
	}

	_, ok := ParseCompressionType("brotli")
	require.False(t, ok)
	require.Equal(t, "Unknown", CompressionType(0).String())
}

func TestParseEncodingType(t *testing.T) {
	e, ok := ParseEncodingType("raw")
	require.True(t, ok)
	require.Equal(t, TypeRaw, e)

	e, ok = ParseEncodingType("Varint")
	require.True(t, ok)
	require.Equal(t, TypeVarint, e)

	_, ok = ParseEncodingType("gorilla")
	require.False(t, ok)
}
