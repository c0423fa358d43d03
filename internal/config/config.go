package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/docopt/docopt-go"
)

const (
	// DefaultOutput is where the decompressed block is written.
	DefaultOutput = "uncomp.bin"

	// DefaultSize is the uncompressed size of a full tracev3 chunk buffer.
	DefaultSize = 65536
)

// ErrNoInput is returned when no input path was given.
var ErrNoInput = errors.New("input path is required")

// Config holds everything one decompression run needs.
type Config struct {
	Input      string
	Output     string
	Size       int
	DictPath   string // optional, empty dictionary when unset
	ExpectPath string // optional known-good output to compare against
	JSON       bool
	Verbose    bool
}

// Default returns a Config with the default output path and size.
func Default() Config {
	return Config{
		Output: DefaultOutput,
		Size:   DefaultSize,
	}
}

// FromOpts builds a Config from parsed command line arguments. Options
// that are absent keep their defaults.
func FromOpts(opts docopt.Opts) (Config, error) {
	cfg := Default()

	cfg.Input, _ = opts.String("<input>")
	if out, err := opts.String("--out"); err == nil && out != "" {
		cfg.Output = out
	}
	if s, err := opts.String("--size"); err == nil && s != "" {
		size, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid --size %q: %w", s, err)
		}
		cfg.Size = int(size)
	}
	cfg.DictPath, _ = opts.String("--dict")
	cfg.ExpectPath, _ = opts.String("--expect")
	cfg.JSON, _ = opts.Bool("--json")
	cfg.Verbose, _ = opts.Bool("--verbose")

	return cfg, cfg.Validate()
}

// Validate checks that the Config describes a runnable job.
func (c Config) Validate() error {
	if c.Input == "" {
		return ErrNoInput
	}
	if c.Output == "" {
		return errors.New("output path is required")
	}
	if c.Size < 0 {
		return fmt.Errorf("size must be non-negative, got %d", c.Size)
	}
	if filepath.Clean(c.Input) == filepath.Clean(c.Output) {
		return fmt.Errorf("output %q would overwrite the input", c.Output)
	}
	return nil
}
