package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spikeknit/spikeknit/internal/options"
	"github.com/spikeknit/spikeknit/pattern"
)

var defaultGlyphs = map[Cell]rune{
	Blank:          ' ',
	Knit:           '.',
	Increase:       'V',
	DecreaseLeft:   '/',
	DecreaseCenter: '|',
	DecreaseRight:  '\\',
}

// textConfig controls how Text draws a grid.
type textConfig struct {
	glyphs     map[Cell]rune
	rowNumbers bool
}

// TextOption configures Grid.Text.
type TextOption = options.Option[*textConfig]

// WithGlyph draws cell c with glyph r.
func WithGlyph(c Cell, r rune) TextOption {
	return options.New(func(cfg *textConfig) error {
		if c > DecreaseRight {
			return fmt.Errorf("unknown chart cell %d", c)
		}
		cfg.glyphs[c] = r

		return nil
	})
}

// WithRowNumbers toggles the row number column on the right. It is on by
// default.
func WithRowNumbers(enabled bool) TextOption {
	return options.NoError(func(cfg *textConfig) {
		cfg.rowNumbers = enabled
	})
}

// Glyph returns the default text glyph for c.
func Glyph(c Cell) rune {
	if r, ok := defaultGlyphs[c]; ok {
		return r
	}

	return '?'
}

// Text renders the grid top row first, so row 1 ends up at the bottom as on
// a printed chart. Each row is padded to the grid width, and by default its
// 1-based number is written on the right.
func (g Grid) Text(opts ...TextOption) (string, error) {
	cfg := &textConfig{
		glyphs:     make(map[Cell]rune, len(defaultGlyphs)),
		rowNumbers: true,
	}
	for c, r := range defaultGlyphs {
		cfg.glyphs[c] = r
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return "", err
	}

	numWidth := len(strconv.Itoa(g.Height()))

	var sb strings.Builder
	for i := g.Height() - 1; i >= 0; i-- {
		for _, c := range g.Row(i) {
			sb.WriteRune(cfg.glyphs[c])
		}
		if cfg.rowNumbers {
			fmt.Fprintf(&sb, " %*d", numWidth, pattern.RowNumber(i))
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}
