package instruction

import (
	"strings"

	"github.com/spikeknit/spikeknit/pattern"
)

// Lines renders every row on its own "Row {n}: ..." line, without compaction,
// heading or trailer. It is the ground truth Compact is checked against.
func Lines(p pattern.Pattern) []string {
	lines := make([]string, 0, p.Len())
	for i, row := range p.All() {
		lines = append(lines, rowLine(i, RenderRow(row)))
	}

	return lines
}

// String renders the uncompacted instructions as one newline-separated block
// ending with the default trailer.
func String(p pattern.Pattern) string {
	var sb strings.Builder
	for _, line := range Lines(p) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString(DefaultTrailer)

	return sb.String()
}
