package main

import (
	"fmt"
	"os"

	"github.com/0xReLogic/lz4block/internal/config"
	"github.com/0xReLogic/lz4block/internal/data/compress"
	"github.com/0xReLogic/lz4block/internal/job"
	"github.com/docopt/docopt-go"
	log "github.com/sirupsen/logrus"
)

const version = "local-build"

// usage is the docopt description of the command line.
func usage() string {
	return fmt.Sprintf(`lz4block %s

Decompresses one raw LZ4 block, such as the payload of a tracev3 chunk.

Usage:
  lz4block <input> [options]
  lz4block -h | --help
  lz4block --version

Options:
  -o --out=<path>     Output file, overwritten if it exists [default: %s].
  -s --size=<n>       Expected uncompressed size in bytes [default: %d].
  -d --dict=<path>    File whose bytes precede the block for back-references.
  -e --expect=<path>  Known-good output to compare the result against.
  --json              Log in JSON format.
  -v --verbose        Enable debug logging.
  -h --help           Show this screen.
  --version           Show version.
`, version, config.DefaultOutput, config.DefaultSize)
}

func main() {
	arguments, err := docopt.ParseArgs(usage(), os.Args[1:], version)
	exitIfError("failed parsing args", err)

	if jsonEnabled, _ := arguments.Bool("--json"); jsonEnabled {
		log.SetFormatter(&log.JSONFormatter{})
	}
	if verbose, _ := arguments.Bool("--verbose"); verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.Debug(arguments)

	cfg, err := config.FromOpts(arguments)
	exitIfError("invalid arguments", err)

	res, err := job.New(compress.NewLZ4(), log.NewEntry(log.StandardLogger())).Run(cfg)
	exitIfError("decompression failed", err)

	log.WithFields(log.Fields{
		"compressed":   res.InputBytes,
		"uncompressed": res.OutputBytes,
		"output":       cfg.Output,
	}).Info("done")
}

func exitIfError(msg string, err error) {
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal(msg)
	}
}
