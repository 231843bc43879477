package instruction

import (
	"fmt"

	"github.com/spikeknit/spikeknit/internal/options"
	"github.com/spikeknit/spikeknit/pattern"
)

// Default literals framing compacted instructions.
const (
	DefaultHeading = "Instructions:"
	DefaultTrailer = "Repeat from Row 1"
)

// Compactor renders a pattern as instruction lines, merging runs of identical
// border rows into "Rows {start}-{end}: ..." lines.
//
// A Compactor holds only its framing literals and is safe for concurrent use.
type Compactor struct {
	heading string
	trailer string
}

// CompactorOption configures a Compactor.
type CompactorOption = options.Option[*Compactor]

// WithHeading replaces the first line. An empty heading omits the line.
func WithHeading(heading string) CompactorOption {
	return options.NoError(func(c *Compactor) {
		c.heading = heading
	})
}

// WithTrailer replaces the last line. An empty trailer omits the line.
func WithTrailer(trailer string) CompactorOption {
	return options.NoError(func(c *Compactor) {
		c.trailer = trailer
	})
}

// NewCompactor creates a Compactor with the default heading and trailer,
// then applies opts.
func NewCompactor(opts ...CompactorOption) (*Compactor, error) {
	c := &Compactor{
		heading: DefaultHeading,
		trailer: DefaultTrailer,
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

var defaultCompactor = &Compactor{heading: DefaultHeading, trailer: DefaultTrailer}

// Compact renders p with the default heading and trailer.
func Compact(p pattern.Pattern) []string {
	return defaultCompactor.Compact(p)
}

// borderRun tracks consecutive border rows sharing the same text.
// start and end are 0-based, inclusive.
type borderRun struct {
	start int
	end   int
	text  string
}

func (r borderRun) line() string {
	if r.start == r.end {
		return rowLine(r.start, r.text)
	}

	return rangeLine(r.start, r.end, r.text)
}

// Compact renders p as instruction lines.
//
// The output starts with the heading and ends with the trailer. In between,
// every non-border row gets its own "Row {n}: ..." line; consecutive border
// rows with identical text collapse into one "Rows {start}-{end}: ..." line,
// and a lone border row keeps the single-row form. Runs never merge across a
// non-border row.
func (c *Compactor) Compact(p pattern.Pattern) []string {
	lines := make([]string, 0, p.Len()+2)
	if c.heading != "" {
		lines = append(lines, c.heading)
	}

	var run *borderRun
	flush := func() {
		if run != nil {
			lines = append(lines, run.line())
			run = nil
		}
	}

	for i, row := range p.All() {
		text := RenderRow(row)

		if !row.IsBorder() {
			flush()
			lines = append(lines, rowLine(i, text))

			continue
		}

		if run != nil && run.text == text {
			run.end = i
			continue
		}

		flush()
		run = &borderRun{start: i, end: i, text: text}
	}
	flush()

	if c.trailer != "" {
		lines = append(lines, c.trailer)
	}

	return lines
}

// rowLine and rangeLine are the only places that turn 0-based indexes into
// display numbers.
func rowLine(index int, text string) string {
	return fmt.Sprintf("Row %d: %s", pattern.RowNumber(index), text)
}

func rangeLine(start, end int, text string) string {
	return fmt.Sprintf("Rows %d-%d: %s", pattern.RowNumber(start), pattern.RowNumber(end), text)
}
