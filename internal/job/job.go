package job

import (
	"errors"
	"fmt"

	"github.com/0xReLogic/lz4block/internal/config"
	"github.com/0xReLogic/lz4block/internal/data/bitmap"
	"github.com/0xReLogic/lz4block/internal/data/compress"
	"github.com/0xReLogic/lz4block/internal/storage"
	log "github.com/sirupsen/logrus"
)

// maxReportedRanges caps how many mismatching ranges are logged.
const maxReportedRanges = 8

// ErrOutputMismatch is returned when the output differs from the expected file.
var ErrOutputMismatch = errors.New("output differs from expected")

// Result summarises a finished run.
type Result struct {
	InputBytes  int
	OutputBytes int
	Sequences   int
	Mismatches  uint64
}

// Job reads one compressed block, decompresses it and writes the output.
type Job struct {
	dec compress.Decompressor
	log *log.Entry
}

// New creates a Job that decodes with dec and logs through logger.
func New(dec compress.Decompressor, logger *log.Entry) *Job {
	return &Job{dec: dec, log: logger}
}

// Run executes cfg. Output is only written when decompression succeeds.
func (j *Job) Run(cfg config.Config) (Result, error) {
	var res Result
	if err := cfg.Validate(); err != nil {
		return res, err
	}
	logger := j.log.WithFields(log.Fields{"input": cfg.Input, "output": cfg.Output, "size": cfg.Size})

	src, err := storage.ReadAll(cfg.Input)
	if err != nil {
		return res, fmt.Errorf("failed to read input: %w", err)
	}
	res.InputBytes = len(src)
	logger.WithField("compressed", len(src)).Debug("read input")

	block := compress.Context{Size: cfg.Size}
	if cfg.DictPath != "" {
		block.Dict, err = storage.ReadAll(cfg.DictPath)
		if err != nil {
			return res, fmt.Errorf("failed to read dictionary: %w", err)
		}
		logger.WithFields(log.Fields{"dict": cfg.DictPath, "dict_bytes": len(block.Dict)}).Debug("loaded dictionary")
	}

	if in, ok := j.dec.(compress.Inspector); ok {
		info, err := in.Inspect(src, block.Dict)
		if err != nil {
			logger.WithError(err).Debug("block layout not recognised")
		} else {
			res.Sequences = info.Sequences
			logger.WithFields(log.Fields{
				"sequences": info.Sequences,
				"literals":  info.Literals,
				"matches":   info.Matches,
			}).Debug("inspected block")
		}
	}

	out, err := j.dec.Decompress(src, block.Size, block.Dict)
	if err != nil {
		return res, fmt.Errorf("failed to decompress %s: %w", cfg.Input, err)
	}
	res.OutputBytes = len(out)

	if err := storage.WriteAtomic(cfg.Output, out); err != nil {
		return res, fmt.Errorf("failed to write output: %w", err)
	}
	logger.WithField("uncompressed", len(out)).Info("wrote decompressed block")

	if cfg.ExpectPath == "" {
		return res, nil
	}
	want, err := storage.ReadAll(cfg.ExpectPath)
	if err != nil {
		return res, fmt.Errorf("failed to read expected output: %w", err)
	}
	diff := bitmap.Diff(out, want)
	res.Mismatches = diff.GetCardinality()
	if res.Mismatches == 0 {
		logger.WithField("expect", cfg.ExpectPath).Info("output matches expected")
		return res, nil
	}
	logger.WithFields(log.Fields{
		"expect":     cfg.ExpectPath,
		"mismatches": res.Mismatches,
		"ranges":     bitmap.Ranges(diff, maxReportedRanges),
	}).Warn("output differs from expected")
	return res, fmt.Errorf("%w: %d bytes", ErrOutputMismatch, res.Mismatches)
}
