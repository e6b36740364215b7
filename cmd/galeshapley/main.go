// Command galeshapley reads a hospital/resident market from stdin (or
// -input) and prints a stable matching.
package main

import (
	"flag"
	"os"

	"github.com/katalvlaran/stablematch/internal/cmd/galeshapley"
	"github.com/katalvlaran/stablematch/internal/platform/config"
)

func main() {
	cfg, err := galeshapley.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := galeshapley.Run(cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		config.Exitf("galeshapley: %v", err)
	}
}
