package pattern

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/spikeknit/spikeknit/format"
)

// Row is an immutable, left-to-right sequence of stitches.
type Row struct {
	stitches []Stitch
}

// NewRow builds a row from stitches in forward (chart) order.
// The input slice is copied.
//
// Returns:
//   - Row: The validated row
//   - error: ErrInvalidStitch wrapped with the offending position
func NewRow(stitches ...Stitch) (Row, error) {
	for i, s := range stitches {
		if _, err := NewStitch(s.kind, s.count); err != nil {
			return Row{}, fmt.Errorf("stitch %d: %w", i, err)
		}
	}

	return Row{stitches: slices.Clone(stitches)}, nil
}

// Len returns the number of stitch entries in the row.
func (r Row) Len() int {
	return len(r.stitches)
}

// At returns the i-th stitch in forward order.
func (r Row) At(i int) Stitch {
	return r.stitches[i]
}

// Stitches returns a copy of the row's stitches in forward order.
func (r Row) Stitches() []Stitch {
	return slices.Clone(r.stitches)
}

// Forward yields stitches left to right, the order a chart is drawn in.
func (r Row) Forward() iter.Seq[Stitch] {
	return func(yield func(Stitch) bool) {
		for _, s := range r.stitches {
			if !yield(s) {
				return
			}
		}
	}
}

// Backward yields stitches right to left, the order a knitter reads them in.
func (r Row) Backward() iter.Seq[Stitch] {
	return func(yield func(Stitch) bool) {
		for i := len(r.stitches) - 1; i >= 0; i-- {
			if !yield(r.stitches[i]) {
				return
			}
		}
	}
}

// Offset returns the number of blank cells contributed by gaps.
func (r Row) Offset() int {
	n := 0
	for _, s := range r.stitches {
		if s.kind == format.StitchGap {
			n += s.count
		}
	}

	return n
}

// Width returns the knitted width of the row: plain counts plus the cells of
// the shaping stitches. Gaps are excluded.
func (r Row) Width() int {
	n := 0
	for _, s := range r.stitches {
		n += s.Width()
	}

	return n
}

// Cells returns the number of chart cells the row spans, gaps included.
func (r Row) Cells() int {
	return r.Offset() + r.Width()
}

// IsBorder reports whether the row is a structurally uniform border row:
// plain stitches only, optionally after a gap. Border rows are the only rows
// eligible for range compaction in instructions.
func (r Row) IsBorder() bool {
	if len(r.stitches) == 0 {
		return false
	}
	for _, s := range r.stitches {
		switch s.kind { //nolint: exhaustive
		case format.StitchPlain, format.StitchGap:
			continue
		default:
			return false
		}
	}

	return true
}

// Equal reports whether both rows hold the same stitches in the same order.
func (r Row) Equal(other Row) bool {
	return slices.Equal(r.stitches, other.stitches)
}

func (r Row) String() string {
	parts := make([]string, len(r.stitches))
	for i, s := range r.stitches {
		parts[i] = s.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}
