package pattern

// Generate builds one repeat of the spike motif.
//
// Parameters:
//   - spikeHeight: Rows per ascending/descending half, at least 1
//   - spikeDistance: Spacing between increase and decrease, at least 1
//
// Returns:
//   - Pattern: 4 + 2*spikeHeight rows, each 2*spikeDistance + 2*spikeHeight + 2 stitches wide
//   - error: ErrInvalidSpikeHeight or ErrInvalidSpikeDistance for non-positive input
//
// Example:
//
//	p, err := pattern.Generate(2, 1)
//	// p.Row(0) = [Gap(2) Plain(8)]
//	// p.Row(2) = [Gap(2) KYOK Plain(2) SK2P Plain(2)]
func Generate(spikeHeight, spikeDistance int) (Pattern, error) {
	params := Params{SpikeHeight: spikeHeight, SpikeDistance: spikeDistance}
	if err := params.Validate(); err != nil {
		return Pattern{}, err
	}

	return generate(params), nil
}

// MustGenerate is like Generate but panics on invalid parameters.
// It is intended for constants in tests and examples.
func MustGenerate(spikeHeight, spikeDistance int) Pattern {
	p, err := Generate(spikeHeight, spikeDistance)
	if err != nil {
		panic(err)
	}

	return p
}

func generate(params Params) Pattern {
	h, d := params.SpikeHeight, params.SpikeDistance
	width := params.Width()
	// run between the two shaping stitches
	span := h - 1 + d

	rows := make([]Row, 0, params.RowCount())

	for range borderRows {
		rows = append(rows, newRowBuilder().gap(h).plain(width).row())
	}

	for n := range h {
		rows = append(rows, newRowBuilder().
			gap(h-n).
			plain(n).
			kyok().
			plain(span).
			sk2p().
			plain(span-n).
			row())
	}

	for range middleRows {
		rows = append(rows, newRowBuilder().plain(width).row())
	}

	for n := range h {
		rows = append(rows, newRowBuilder().
			gap(n).
			plain(h-1-n).
			sk2p().
			plain(span).
			kyok().
			plain(n+d).
			row())
	}

	return Pattern{params: params, rows: rows}
}

// rowBuilder appends stitches in chart order and drops empty runs, so every
// stored Plain and Gap count is positive.
type rowBuilder struct {
	stitches []Stitch
}

func newRowBuilder() *rowBuilder {
	return &rowBuilder{stitches: make([]Stitch, 0, 6)}
}

func (b *rowBuilder) plain(n int) *rowBuilder {
	if n > 0 {
		b.stitches = append(b.stitches, Plain(n))
	}

	return b
}

func (b *rowBuilder) gap(n int) *rowBuilder {
	if n > 0 {
		b.stitches = append(b.stitches, Gap(n))
	}

	return b
}

func (b *rowBuilder) kyok() *rowBuilder {
	b.stitches = append(b.stitches, KYOK())
	return b
}

func (b *rowBuilder) sk2p() *rowBuilder {
	b.stitches = append(b.stitches, SK2P())
	return b
}

func (b *rowBuilder) row() Row {
	return Row{stitches: b.stitches}
}
