// Package galeshapley wires the stable-matching command: configuration from
// environment and flags, input decoding, the matcher run and result output.
package galeshapley

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/stablematch/builder"
	"github.com/katalvlaran/stablematch/internal/platform/config"
	"github.com/katalvlaran/stablematch/matching"
	"github.com/katalvlaran/stablematch/prefio"
)

// Config holds galeshapley command configuration. Variables are read with
// config.EnvPrefix, e.g. STABLEMATCH_SEED.
type Config struct {
	Input    string `env:"INPUT"`
	Proposer string `env:"PROPOSER" envDefault:"hospital"`
	Header   bool   `env:"HEADER"   envDefault:"true"`
	Verify   bool   `env:"VERIFY"`
	Generate int    `env:"GENERATE"`
	Seed     int64  `env:"SEED"     envDefault:"1"`
	Quiet    bool   `env:"QUIET"`
}

// ParseConfig parses environment defaults, then flags, into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Input, "input", cfg.Input, "path to the market file (default: stdin)")
	fs.StringVar(&cfg.Proposer, "proposer", cfg.Proposer, "proposing side: hospital or resident")
	fs.BoolVar(&cfg.Header, "header", cfg.Header, `print the leading "Yes" line`)
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "audit the result for blocking pairs")
	fs.IntVar(&cfg.Generate, "generate", cfg.Generate, "write a random market of this size instead of matching")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for -generate")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress the proposal count on stderr")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the command. in is read when cfg.Input is empty; the result
// goes to out and diagnostics to errOut.
func Run(cfg Config, in io.Reader, out io.Writer, errOut io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if cfg.Generate != 0 {
		return generate(cfg, out)
	}

	proposer, err := parseProposer(cfg.Proposer)
	if err != nil {
		return err
	}

	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}
	if in == nil {
		return errors.New("input is required")
	}

	inst, err := prefio.Read(in)
	if err != nil {
		return fmt.Errorf("read market: %w", err)
	}
	res, err := matching.Match(inst, matching.WithProposer(proposer))
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}

	logger := log.New(errOut, "", 0)
	if !cfg.Quiet {
		logger.Printf("Total proposals: %d", res.Proposals)
	}
	if cfg.Verify {
		if pairs := matching.BlockingPairs(inst, res); len(pairs) > 0 {
			return fmt.Errorf("verify: %d blocking pairs, first hospital %d / resident %d",
				len(pairs), pairs[0].Hospital+1, pairs[0].Resident+1)
		}
		if !cfg.Quiet {
			logger.Printf("Verified: no blocking pairs")
		}
	}

	return prefio.Write(out, res, prefio.WithHeader(cfg.Header))
}

func generate(cfg Config, out io.Writer) error {
	inst, err := builder.Build(builder.Random(cfg.Generate), builder.WithSeed(cfg.Seed))
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	return prefio.WriteInstance(out, inst)
}

func parseProposer(s string) (matching.Side, error) {
	switch s {
	case "hospital", "hospitals":
		return matching.Hospitals, nil
	case "resident", "residents":
		return matching.Residents, nil
	default:
		return 0, fmt.Errorf("unknown proposer %q (want hospital or resident)", s)
	}
}
