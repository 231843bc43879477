// Command spikeknit prints knitting instructions for a spike lace motif.
//
// Usage:
//
//	spikeknit -height 4 -distance 4
//	spikeknit -height 2 -distance 1 -format chart
//	spikeknit -config pattern.yaml -format blob -compression zstd -output spike.bin
//
// Settings come from the defaults, then an optional YAML file given with
// -config, then the flags set on the command line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spikeknit/spikeknit"
	"github.com/spikeknit/spikeknit/yarn"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("spikeknit: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, err := parseConfig("spikeknit", args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	verbosef := func(format string, v ...any) {
		if cfg.Verbose {
			log.Printf(format, v...)
		}
	}

	p, err := spikeknit.Generate(cfg.Height, cfg.Distance)
	if err != nil {
		return err
	}
	verbosef("generated %s: %d rows, %d stitches wide", p.Params(), p.Len(), p.Width())

	f, err := spikeknit.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	opts, err := cfg.blobOptions()
	if err != nil {
		return err
	}

	out, err := spikeknit.Render(p, f, opts...)
	if err != nil {
		return err
	}
	verbosef("rendered %d bytes as %s", len(out), f)

	if f == spikeknit.FormatText || f == spikeknit.FormatPlain {
		needle, err := yarn.NeedleSize(yarn.Weight(cfg.Yarn))
		if err != nil {
			return err
		}
		out = fmt.Appendf(out, "\nYarn: %s, suggested needle size: %s\n", cfg.Yarn, needle)
	}

	if cfg.Output == "" {
		_, err = stdout.Write(out)
		return err
	}

	if err := os.WriteFile(cfg.Output, out, 0o644); err != nil { //nolint: gosec
		return fmt.Errorf("write output: %w", err)
	}
	verbosef("wrote %s", cfg.Output)

	return nil
}
