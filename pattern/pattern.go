package pattern

import (
	"fmt"
	"iter"
	"slices"
	"strconv"

	"github.com/spikeknit/spikeknit/errs"
	"github.com/spikeknit/spikeknit/format"
	"github.com/spikeknit/spikeknit/internal/hash"
)

// Pattern is one full repeat of the spike motif.
//
// A Pattern is immutable: accessors return copies or iterators.
type Pattern struct {
	params Params
	rows   []Row
}

// RowNumber converts a 0-based row index into the 1-based number shown to
// knitters. All display code goes through this function.
func RowNumber(index int) int {
	return index + 1
}

// RowIndex converts a 1-based row number back into a 0-based index.
func RowIndex(number int) int {
	return number - 1
}

// FromRows rebuilds a Pattern from rows produced elsewhere, for example by a
// decoder. It enforces the structural invariants of Generate.
//
// Parameters:
//   - params: Generation parameters the rows claim to follow
//   - rows: Rows in chart order, row 1 first
//
// Returns:
//   - Pattern: The validated pattern
//   - error: Params validation errors, ErrRowCountMismatch, ErrRowWidthMismatch
//     or ErrInvalidStitch
func FromRows(params Params, rows []Row) (Pattern, error) {
	if err := params.Validate(); err != nil {
		return Pattern{}, err
	}

	if len(rows) != params.RowCount() {
		return Pattern{}, fmt.Errorf("%w: want %d rows, got %d",
			errs.ErrRowCountMismatch, params.RowCount(), len(rows))
	}

	width := params.Width()
	for i, row := range rows {
		for j, s := range row.stitches {
			if !s.Valid() {
				return Pattern{}, fmt.Errorf("row %d stitch %d: %w", RowNumber(i), j, errs.ErrInvalidStitch)
			}
		}
		if row.Width() != width {
			return Pattern{}, fmt.Errorf("%w: row %d is %d wide, want %d",
				errs.ErrRowWidthMismatch, RowNumber(i), row.Width(), width)
		}
	}

	return Pattern{params: params, rows: slices.Clone(rows)}, nil
}

// Params returns the parameters the pattern was generated from.
func (p Pattern) Params() Params {
	return p.params
}

// Len returns the number of rows.
func (p Pattern) Len() int {
	return len(p.rows)
}

// Width returns the knitted width shared by every row.
func (p Pattern) Width() int {
	return p.params.Width()
}

// Row returns the row at 0-based index i.
func (p Pattern) Row(i int) Row {
	return p.rows[i]
}

// RowAt returns the row with the given 1-based number.
func (p Pattern) RowAt(number int) (Row, error) {
	i := RowIndex(number)
	if i < 0 || i >= len(p.rows) {
		return Row{}, fmt.Errorf("%w: %d not in 1..%d", errs.ErrInvalidRowNumber, number, len(p.rows))
	}

	return p.rows[i], nil
}

// Rows returns a copy of all rows, row 1 first.
func (p Pattern) Rows() []Row {
	return slices.Clone(p.rows)
}

// All yields every row with its 0-based index, row 1 first.
func (p Pattern) All() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i, row := range p.rows {
			if !yield(i, row) {
				return
			}
		}
	}
}

// Section reports which part of the motif the row at 0-based index i belongs to.
func (p Pattern) Section(i int) format.Section {
	h := p.params.SpikeHeight
	switch {
	case i < borderRows:
		return format.SectionTopBorder
	case i < borderRows+h:
		return format.SectionAscending
	case i < borderRows+h+middleRows:
		return format.SectionMiddleBorder
	default:
		return format.SectionDescending
	}
}

// Equal reports whether both patterns share parameters and rows.
func (p Pattern) Equal(other Pattern) bool {
	if p.params != other.params || len(p.rows) != len(other.rows) {
		return false
	}
	for i := range p.rows {
		if !p.rows[i].Equal(other.rows[i]) {
			return false
		}
	}

	return true
}

// Fingerprint returns a 64-bit xxHash of the pattern's structure. Equal
// patterns always share a fingerprint.
func (p Pattern) Fingerprint() uint64 {
	d := hash.NewDigest()
	d.WriteString(strconv.Itoa(p.params.SpikeHeight))
	_ = d.WriteByte('x')
	d.WriteString(strconv.Itoa(p.params.SpikeDistance))
	for _, row := range p.rows {
		_ = d.WriteByte('\n')
		for _, s := range row.stitches {
			_ = d.WriteByte(byte(s.kind))
			d.WriteString(strconv.Itoa(s.count))
			_ = d.WriteByte(',')
		}
	}

	return d.Sum64()
}
