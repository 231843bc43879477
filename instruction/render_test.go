package instruction

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spikeknit/spikeknit/errs"
	"github.com/spikeknit/spikeknit/pattern"
)

func TestToken(t *testing.T) {
	tests := []struct {
		stitch pattern.Stitch
		want   string
	}{
		{pattern.Plain(1), "k1"},
		{pattern.Plain(12), "k12"},
		{pattern.KYOK(), "kyok"},
		{pattern.SK2P(), "sk2p"},
		{pattern.Gap(4), ""},
		{pattern.Stitch{}, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Token(tt.stitch), tt.stitch.String())
	}
}

func TestRenderRow(t *testing.T) {
	row, err := pattern.NewRow(pattern.Gap(2), pattern.KYOK(), pattern.Plain(2), pattern.SK2P(), pattern.Plain(2))
	require.NoError(t, err)

	require.Equal(t, "k2, sk2p, k2, kyok, ", RenderRow(row))
	require.Equal(t, []string{"k2", "sk2p", "k2", "kyok"}, Tokens(row))
	require.Equal(t, []string{"kyok", "k2", "sk2p", "k2"}, ForwardTokens(row))
}

func TestRenderRow_GapOnlyAndEmpty(t *testing.T) {
	gapOnly, err := pattern.NewRow(pattern.Gap(3))
	require.NoError(t, err)
	require.Empty(t, RenderRow(gapOnly))
	require.Empty(t, RenderRow(pattern.Row{}))
}

func TestTokens_ForwardBackwardRoundTrip(t *testing.T) {
	for h := 1; h <= 5; h++ {
		for d := 1; d <= 3; d++ {
			p := pattern.MustGenerate(h, d)
			for _, row := range p.All() {
				forward := ForwardTokens(row)
				backward := Tokens(row)

				slices.Reverse(forward)
				require.Equal(t, backward, forward)
			}
		}
	}
}

func TestParseTokens(t *testing.T) {
	p := pattern.MustGenerate(3, 2)
	for _, row := range p.All() {
		stitches, err := ParseTokens(RenderRow(row))
		require.NoError(t, err)

		var want []pattern.Stitch
		for s := range row.Backward() {
			if s.Width() > 0 {
				want = append(want, s)
			}
		}
		require.Equal(t, want, stitches)
	}
}

func TestParseTokens_Errors(t *testing.T) {
	for _, text := range []string{"k0, ", "kx, ", "purl, ", "k-1, "} {
		_, err := ParseTokens(text)
		require.ErrorIs(t, err, errs.ErrInvalidInstruction, text)
	}

	stitches, err := ParseTokens("")
	require.NoError(t, err)
	require.Empty(t, stitches)
}
