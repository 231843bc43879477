package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spikeknit/spikeknit"
	"github.com/spikeknit/spikeknit/blob"
	"github.com/spikeknit/spikeknit/errs"
	"github.com/spikeknit/spikeknit/format"
	"github.com/spikeknit/spikeknit/pattern"
	"github.com/spikeknit/spikeknit/yarn"
)

// Config holds every CLI setting. The YAML keys match the flag names.
type Config struct {
	Height      int    `yaml:"height"`
	Distance    int    `yaml:"distance"`
	Yarn        string `yaml:"yarn"`
	Format      string `yaml:"format"`
	Compression string `yaml:"compression"`
	Encoding    string `yaml:"encoding"`
	BigEndian   bool   `yaml:"big-endian"`
	Output      string `yaml:"output"`
	Verbose     bool   `yaml:"verbose"`
}

// DefaultConfig returns the settings used when neither a file nor a flag
// provides a value.
func DefaultConfig() Config {
	params := pattern.DefaultParams()

	return Config{
		Height:      params.SpikeHeight,
		Distance:    params.SpikeDistance,
		Yarn:        string(yarn.DefaultWeight),
		Format:      string(spikeknit.FormatText),
		Compression: "none",
		Encoding:    "varint",
	}
}

// LoadConfigFile decodes a YAML config file on top of cfg. Unknown keys are
// rejected.
func LoadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	return decodeConfig(data, cfg)
}

func decodeConfig(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	return nil
}

// bindFlags registers one flag per Config field on fs, writing into cfg.
// It returns a pointer to the -config path.
func bindFlags(fs *flag.FlagSet, cfg *Config) *string {
	configPath := fs.String("config", "", "Optional YAML config file; flags override its values")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Spike height, rows per rising or falling half")
	fs.IntVar(&cfg.Distance, "distance", cfg.Distance, "Spike distance, stitches between increase and decrease")
	fs.StringVar(&cfg.Yarn, "yarn", cfg.Yarn, "Yarn weight used for the needle suggestion")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: text, plain, chart, json, yaml or blob")
	fs.StringVar(&cfg.Compression, "compression", cfg.Compression, "Blob compression: none, zstd, s2 or lz4")
	fs.StringVar(&cfg.Encoding, "encoding", cfg.Encoding, "Blob row encoding: raw or varint")
	fs.BoolVar(&cfg.BigEndian, "big-endian", cfg.BigEndian, "Write big-endian blobs")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "Write to this file instead of stdout")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Log progress to stderr")

	return configPath
}

// parseConfig parses args into a Config. Values come from the defaults, then
// the -config file, then flags set explicitly on the command line.
func parseConfig(name string, args []string) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	configPath := bindFlags(fs, &cfg)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *configPath == "" {
		return cfg, nil
	}

	fromFile := DefaultConfig()
	if err := LoadConfigFile(*configPath, &fromFile); err != nil {
		return Config{}, err
	}

	// Replay the flags set on the command line over the file values.
	overlay := flag.NewFlagSet(name, flag.ContinueOnError)
	bindFlags(overlay, &fromFile)
	var explicit []string
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "config" {
			explicit = append(explicit, "-"+f.Name+"="+f.Value.String())
		}
	})
	if err := overlay.Parse(explicit); err != nil {
		return Config{}, err
	}

	return fromFile, nil
}

// Validate checks every field and reports the first problem.
func (c Config) Validate() error {
	params := pattern.Params{SpikeHeight: c.Height, SpikeDistance: c.Distance}
	if err := params.Validate(); err != nil {
		return err
	}
	if _, err := yarn.NeedleSize(yarn.Weight(c.Yarn)); err != nil {
		return err
	}
	if _, err := spikeknit.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := c.blobOptions(); err != nil {
		return err
	}

	return nil
}

func (c Config) blobOptions() ([]blob.PatternEncoderOption, error) {
	comp, ok := format.ParseCompressionType(c.Compression)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, c.Compression)
	}
	enc, ok := format.ParseEncodingType(c.Encoding)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidEncodingType, c.Encoding)
	}

	opts := []blob.PatternEncoderOption{blob.WithCompression(comp), blob.WithRowEncoding(enc)}
	if c.BigEndian {
		opts = append(opts, blob.WithBigEndian())
	}

	return opts, nil
}
