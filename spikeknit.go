// Package spikeknit generates knitting instructions for a spike lace motif.
//
// A spike is shaped by a KYOK increase travelling against an SK2P decrease.
// Two integers describe it: the spike height (rows per rising or falling
// half) and the spike distance (plain stitches between the shaping pair).
// Every repeat has 4 + 2*height rows and is 2*distance + 2*height + 2
// stitches wide.
//
// # Basic Usage
//
// Generating and compacting a pattern:
//
//	import "github.com/spikeknit/spikeknit"
//
//	lines, err := spikeknit.Instructions(2, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, line := range lines {
//	    fmt.Println(line)
//	}
//
//	// Instructions:
//	// Rows 1-2: k8,
//	// Row 3: k2, sk2p, k2, kyok,
//	// ...
//	// Repeat from Row 1
//
// Rendering other views of the same pattern:
//
//	p, _ := spikeknit.Generate(4, 4)
//	chart, _ := spikeknit.Chart(p)
//	doc, _ := spikeknit.Render(p, spikeknit.FormatJSON)
//	data, _ := spikeknit.Encode(p, blob.WithCompression(format.CompressionZstd))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the pattern,
// instruction, chart, blob and export packages, simplifying the most common
// use cases. For fine-grained control, use those packages directly.
package spikeknit

import (
	"fmt"
	"strings"

	"github.com/spikeknit/spikeknit/blob"
	"github.com/spikeknit/spikeknit/chart"
	"github.com/spikeknit/spikeknit/errs"
	"github.com/spikeknit/spikeknit/export"
	"github.com/spikeknit/spikeknit/format"
	"github.com/spikeknit/spikeknit/instruction"
	"github.com/spikeknit/spikeknit/internal/options"
	"github.com/spikeknit/spikeknit/pattern"
	"github.com/spikeknit/spikeknit/yarn"
)

// Format selects an output rendering for Render.
type Format string

const (
	FormatText  Format = "text"  // FormatText is the compacted instruction list.
	FormatPlain Format = "plain" // FormatPlain is one line per row plus the trailer.
	FormatChart Format = "chart" // FormatChart is the text chart followed by its legend.
	FormatJSON  Format = "json"  // FormatJSON is the export document as JSON.
	FormatYAML  Format = "yaml"  // FormatYAML is the export document as YAML.
	FormatBlob  Format = "blob"  // FormatBlob is the binary pattern blob.
)

// Formats returns every output format Render accepts.
func Formats() []Format {
	return []Format{FormatText, FormatPlain, FormatChart, FormatJSON, FormatYAML, FormatBlob}
}

// ParseFormat converts a format name to a Format.
//
// Returns ErrUnknownFormat when the name matches no format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", errs.ErrUnknownFormat, s)
}

var defaultBlobOptions = options.Join(
	blob.WithLittleEndian(),
	blob.WithRowEncoding(format.TypeVarint),
	blob.WithCompression(format.CompressionNone),
)

// Generate builds one repeat of the spike motif.
//
// Parameters:
//   - spikeHeight: Rows per rising or falling half, at least 1
//   - spikeDistance: Plain stitches between increase and decrease, at least 1
//
// Returns:
//   - pattern.Pattern: The generated pattern.
//   - error: ErrInvalidSpikeHeight or ErrInvalidSpikeDistance.
func Generate(spikeHeight, spikeDistance int) (pattern.Pattern, error) {
	return pattern.Generate(spikeHeight, spikeDistance)
}

// Compact renders p as compacted instruction lines: a heading, one line per
// row with identical border rows merged into ranges, and a trailer.
func Compact(p pattern.Pattern) []string {
	return instruction.Compact(p)
}

// Instructions generates a pattern and compacts it in one step.
//
// Example:
//
//	lines, err := spikeknit.Instructions(4, 4)
func Instructions(spikeHeight, spikeDistance int) ([]string, error) {
	p, err := Generate(spikeHeight, spikeDistance)
	if err != nil {
		return nil, err
	}

	return Compact(p), nil
}

// Chart renders p as a text chart, row 1 at the bottom, followed by the
// symbol legend.
func Chart(p pattern.Pattern) (string, error) {
	text, err := chart.Build(p).Text()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(text)
	sb.WriteByte('\n')
	for _, e := range chart.Legend() {
		fmt.Fprintf(&sb, "%-4s %-5s %s\n", e.Symbol, e.Name, e.Description)
	}

	return sb.String(), nil
}

// Encode encodes p as a binary blob.
//
// Without options the blob is little-endian, varint row encoded and
// uncompressed. opts are applied after the defaults.
func Encode(p pattern.Pattern, opts ...blob.PatternEncoderOption) ([]byte, error) {
	allOpts := make([]blob.PatternEncoderOption, 0, len(opts)+1)
	allOpts = append(allOpts, defaultBlobOptions)
	allOpts = append(allOpts, opts...)

	return blob.Encode(p, allOpts...)
}

// Decode decodes a blob produced by Encode.
func Decode(data []byte) (pattern.Pattern, error) {
	return blob.Decode(data)
}

// NeedleSize returns the suggested needle size for a yarn weight.
func NeedleSize(weight string) (string, error) {
	return yarn.NeedleSize(yarn.Weight(weight))
}

// Render renders p in the given format. Text formats end with a newline.
//
// Parameters:
//   - p: Pattern to render
//   - f: Output format, see Formats
//   - opts: Blob encoder options, only used by FormatBlob
//
// Returns:
//   - []byte: The rendered output.
//   - error: ErrUnknownFormat, or an error from the underlying renderer.
func Render(p pattern.Pattern, f Format, opts ...blob.PatternEncoderOption) ([]byte, error) {
	switch f {
	case FormatText:
		return []byte(strings.Join(Compact(p), "\n") + "\n"), nil
	case FormatPlain:
		return []byte(instruction.String(p) + "\n"), nil
	case FormatChart:
		text, err := Chart(p)
		if err != nil {
			return nil, err
		}

		return []byte(text), nil
	case FormatJSON:
		data, err := export.MarshalJSON(p)
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil
	case FormatYAML:
		return export.MarshalYAML(p)
	case FormatBlob:
		return Encode(p, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownFormat, string(f))
	}
}
