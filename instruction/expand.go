package instruction

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spikeknit/spikeknit/errs"
	"github.com/spikeknit/spikeknit/pattern"
)

// Expand undoes compaction: every "Rows a-b: text" line becomes b-a+1
// "Row n: text" lines. Lines that are not row lines (heading, trailer) are
// skipped. Row numbers must start at 1 and be contiguous.
//
// Returns:
//   - []string: One line per row, in the same form Lines produces
//   - error: ErrInvalidInstruction for malformed or out-of-order row lines
func Expand(lines []string) ([]string, error) {
	out := make([]string, 0, len(lines))
	next := 1

	for _, line := range lines {
		start, end, text, ok, err := parseRowLine(line)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if start != next || end < start {
			return nil, fmt.Errorf("%w: %q starts at row %d, want %d", errs.ErrInvalidInstruction, line, start, next)
		}

		for n := start; n <= end; n++ {
			out = append(out, rowLine(pattern.RowIndex(n), text))
		}
		next = end + 1
	}

	return out, nil
}

// parseRowLine splits "Row n: text" or "Rows a-b: text". ok is false for
// lines that are not row lines at all.
func parseRowLine(line string) (start, end int, text string, ok bool, err error) {
	var head string
	var isRange bool

	switch {
	case strings.HasPrefix(line, "Rows "):
		head, isRange = strings.TrimPrefix(line, "Rows "), true
	case strings.HasPrefix(line, "Row "):
		head = strings.TrimPrefix(line, "Row ")
	default:
		return 0, 0, "", false, nil
	}

	numbers, text, found := strings.Cut(head, ": ")
	if !found {
		return 0, 0, "", false, fmt.Errorf("%w: missing ': ' in %q", errs.ErrInvalidInstruction, line)
	}

	if !isRange {
		n, convErr := strconv.Atoi(numbers)
		if convErr != nil {
			return 0, 0, "", false, fmt.Errorf("%w: %q: %w", errs.ErrInvalidInstruction, line, convErr)
		}

		return n, n, text, true, nil
	}

	first, last, found := strings.Cut(numbers, "-")
	if !found {
		return 0, 0, "", false, fmt.Errorf("%w: missing range in %q", errs.ErrInvalidInstruction, line)
	}
	start, err1 := strconv.Atoi(first)
	end, err2 := strconv.Atoi(last)
	if err1 != nil || err2 != nil {
		return 0, 0, "", false, fmt.Errorf("%w: bad range in %q", errs.ErrInvalidInstruction, line)
	}

	return start, end, text, true, nil
}

// ParseTokens parses instruction text such as "k2, sk2p, k2, kyok, " into
// stitches in reading order (right to left on the chart). Gaps never appear in
// instruction text and are therefore never returned.
func ParseTokens(text string) ([]pattern.Stitch, error) {
	fields := strings.Split(strings.TrimSpace(text), ",")
	out := make([]pattern.Stitch, 0, len(fields))

	for _, f := range fields {
		tok := strings.TrimSpace(f)
		switch {
		case tok == "":
			continue
		case tok == KYOKToken:
			out = append(out, pattern.KYOK())
		case tok == SK2PToken:
			out = append(out, pattern.SK2P())
		case strings.HasPrefix(tok, PlainPrefix):
			n, err := strconv.Atoi(strings.TrimPrefix(tok, PlainPrefix))
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: bad plain token %q", errs.ErrInvalidInstruction, tok)
			}
			out = append(out, pattern.Plain(n))
		default:
			return nil, fmt.Errorf("%w: unknown token %q", errs.ErrInvalidInstruction, tok)
		}
	}

	return out, nil
}
