package chart

// LegendEntry explains one chart symbol.
type LegendEntry struct {
	Symbol      string
	Name        string
	Description string
}

// Legend returns the chart legend in display order.
func Legend() []LegendEntry {
	return []LegendEntry{
		{
			Symbol:      string(Glyph(Knit)),
			Name:        "k",
			Description: "Knit one",
		},
		{
			Symbol:      string(Glyph(Increase)),
			Name:        "KYoK",
			Description: "Knit one, yarn over, knit one in same stitch",
		},
		{
			Symbol:      string([]rune{Glyph(DecreaseLeft), Glyph(DecreaseCenter), Glyph(DecreaseRight)}),
			Name:        "SK2P",
			Description: "Slip one knitwise, knit two together, pass slipped stitch over",
		},
	}
}
