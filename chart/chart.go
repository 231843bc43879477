// Package chart lays a pattern out as a grid of cells in forward (left to
// right) order, the way a chart is drawn, and renders that grid as text.
//
// Row 1 is the bottom row of a chart. Gaps become blank cells, a plain run of
// n stitches becomes n knit cells, KYOK becomes one decorated cell and SK2P
// becomes three decorated cells.
package chart

import (
	"slices"

	"github.com/spikeknit/spikeknit/format"
	"github.com/spikeknit/spikeknit/pattern"
)

// Cell is one square of the chart.
type Cell uint8

const (
	Blank          Cell = iota // Blank is an alignment cell with no stitch.
	Knit                       // Knit is a single knit stitch.
	Increase                   // Increase is the single cell of a KYOK.
	DecreaseLeft               // DecreaseLeft is the first cell of an SK2P.
	DecreaseCenter             // DecreaseCenter is the middle cell of an SK2P.
	DecreaseRight              // DecreaseRight is the last cell of an SK2P.
)

func (c Cell) String() string {
	switch c {
	case Blank:
		return "Blank"
	case Knit:
		return "Knit"
	case Increase:
		return "Increase"
	case DecreaseLeft:
		return "DecreaseLeft"
	case DecreaseCenter:
		return "DecreaseCenter"
	case DecreaseRight:
		return "DecreaseRight"
	default:
		return "Unknown"
	}
}

// Stitch reports whether the cell holds a stitch.
func (c Cell) Stitch() bool {
	return c >= Knit && c <= DecreaseRight
}

// Grid is the cell layout of a whole pattern. Rows are indexed from 0 (row 1,
// the bottom of the chart).
type Grid struct {
	rows  [][]Cell
	width int
}

// Build lays out every row of p.
func Build(p pattern.Pattern) Grid {
	g := Grid{rows: make([][]Cell, 0, p.Len())}
	for _, row := range p.All() {
		cells := BuildRow(row)
		g.width = max(g.width, len(cells))
		g.rows = append(g.rows, cells)
	}

	return g
}

// BuildRow lays out a single row left to right.
func BuildRow(row pattern.Row) []Cell {
	cells := make([]Cell, 0, row.Cells())
	for s := range row.Forward() {
		switch s.Kind() {
		case format.StitchGap:
			cells = appendN(cells, Blank, s.Count())
		case format.StitchPlain:
			cells = appendN(cells, Knit, s.Count())
		case format.StitchKYOK:
			cells = append(cells, Increase)
		case format.StitchSK2P:
			cells = append(cells, DecreaseLeft, DecreaseCenter, DecreaseRight)
		}
	}

	return cells
}

func appendN(cells []Cell, c Cell, n int) []Cell {
	for range n {
		cells = append(cells, c)
	}

	return cells
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g.rows)
}

// Width returns the widest row in cells, gaps included.
func (g Grid) Width() int {
	return g.width
}

// Row returns a copy of the cells of the row at 0-based index i, padded with
// blanks to the grid width.
func (g Grid) Row(i int) []Cell {
	out := slices.Clone(g.rows[i])
	return appendN(out, Blank, g.width-len(out))
}

// At returns the cell at 0-based row i and column x. Positions beyond the end
// of a row are blank.
func (g Grid) At(i, x int) Cell {
	row := g.rows[i]
	if x < 0 || x >= len(row) {
		return Blank
	}

	return row[x]
}

// StitchCount returns the number of non-blank cells in the row at index i.
func (g Grid) StitchCount(i int) int {
	n := 0
	for _, c := range g.rows[i] {
		if c.Stitch() {
			n++
		}
	}

	return n
}
