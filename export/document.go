// Package export converts patterns to and from JSON and YAML documents.
//
// A Document carries the generation parameters, every row as structured
// stitches plus its rendered instruction, and the compacted instructions.
// Parsing a Document rebuilds the Pattern through pattern.FromRows, so a
// hand-edited document is held to the same invariants as a generated one.
package export

import (
	"fmt"

	"github.com/spikeknit/spikeknit/errs"
	"github.com/spikeknit/spikeknit/format"
	"github.com/spikeknit/spikeknit/instruction"
	"github.com/spikeknit/spikeknit/pattern"
)

// Document is the serializable view of a Pattern.
type Document struct {
	SpikeHeight   int      `json:"spike_height" yaml:"spike_height"`
	SpikeDistance int      `json:"spike_distance" yaml:"spike_distance"`
	Width         int      `json:"width" yaml:"width"`
	Fingerprint   string   `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	Rows          []Row    `json:"rows" yaml:"rows"`
	Instructions  []string `json:"instructions,omitempty" yaml:"instructions,omitempty"`
}

// Row is one pattern row. Stitches are in forward (chart) order;
// Instruction is the backward reading a knitter follows.
type Row struct {
	Number      int      `json:"number" yaml:"number"`
	Section     string   `json:"section" yaml:"section"`
	Stitches    []Stitch `json:"stitches" yaml:"stitches"`
	Instruction string   `json:"instruction,omitempty" yaml:"instruction,omitempty"`
}

// Stitch is one row entry. Count is omitted for KYOK and SK2P.
type Stitch struct {
	Kind  string `json:"kind" yaml:"kind"`
	Count int    `json:"count,omitempty" yaml:"count,omitempty"`
}

// NewDocument builds the document view of p.
func NewDocument(p pattern.Pattern) Document {
	params := p.Params()

	doc := Document{
		SpikeHeight:   params.SpikeHeight,
		SpikeDistance: params.SpikeDistance,
		Width:         p.Width(),
		Fingerprint:   formatFingerprint(p.Fingerprint()),
		Rows:          make([]Row, 0, p.Len()),
		Instructions:  instruction.Compact(p),
	}

	for i, row := range p.All() {
		stitches := make([]Stitch, 0, row.Len())
		for s := range row.Forward() {
			st := Stitch{Kind: s.Kind().String()}
			if s.Kind().Repeatable() {
				st.Count = s.Count()
			}
			stitches = append(stitches, st)
		}

		doc.Rows = append(doc.Rows, Row{
			Number:      pattern.RowNumber(i),
			Section:     p.Section(i).String(),
			Stitches:    stitches,
			Instruction: instruction.RenderRow(row),
		})
	}

	return doc
}

// Pattern rebuilds the Pattern the document describes.
//
// Row numbers must run 1..n in order. A non-empty Fingerprint must match the
// rebuilt pattern. Width, Section, Instruction and Instructions are derived
// data and are not read.
func (d Document) Pattern() (pattern.Pattern, error) {
	params := pattern.Params{SpikeHeight: d.SpikeHeight, SpikeDistance: d.SpikeDistance}

	rows := make([]pattern.Row, 0, len(d.Rows))
	for i, r := range d.Rows {
		if r.Number != pattern.RowNumber(i) {
			return pattern.Pattern{}, fmt.Errorf("%w: entry %d is numbered %d", errs.ErrInvalidRowNumber, i, r.Number)
		}

		stitches := make([]pattern.Stitch, 0, len(r.Stitches))
		for _, st := range r.Stitches {
			s, err := st.stitch()
			if err != nil {
				return pattern.Pattern{}, fmt.Errorf("row %d: %w", r.Number, err)
			}
			stitches = append(stitches, s)
		}

		row, err := pattern.NewRow(stitches...)
		if err != nil {
			return pattern.Pattern{}, fmt.Errorf("row %d: %w", r.Number, err)
		}
		rows = append(rows, row)
	}

	p, err := pattern.FromRows(params, rows)
	if err != nil {
		return pattern.Pattern{}, err
	}

	if d.Fingerprint != "" {
		if got := formatFingerprint(p.Fingerprint()); got != d.Fingerprint {
			return pattern.Pattern{}, fmt.Errorf("%w: document says %s, rows give %s",
				errs.ErrFingerprintMismatch, d.Fingerprint, got)
		}
	}

	return p, nil
}

func (s Stitch) stitch() (pattern.Stitch, error) {
	kind, ok := format.ParseStitchKind(s.Kind)
	if !ok {
		return pattern.Stitch{}, fmt.Errorf("%w: %q", errs.ErrUnknownStitchKind, s.Kind)
	}

	count := s.Count
	if !kind.Repeatable() && count == 0 {
		count = 1
	}

	return pattern.NewStitch(kind, count)
}

func formatFingerprint(fp uint64) string {
	return fmt.Sprintf("%016x", fp)
}
