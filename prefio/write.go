package prefio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/stablematch/matching"
)

// Header is the literal first output line. A stable matching always exists
// for complete markets, so no "No" variant is ever written.
const Header = "Yes"

// WriteOption customizes Write.
type WriteOption func(*writeConfig)

type writeConfig struct {
	header bool
}

// WithHeader toggles the leading Header line (default on).
func WithHeader(on bool) WriteOption {
	return func(c *writeConfig) {
		c.header = on
	}
}

// Write emits res as the header line followed by one 1-based resident index
// per hospital.
func Write(w io.Writer, res matching.Result, opts ...WriteOption) error {
	cfg := writeConfig{header: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	bw := bufio.NewWriter(w)
	if cfg.header {
		bw.WriteString(Header)
		bw.WriteByte('\n')
	}
	for _, r := range res.HospitalToResident {
		bw.WriteString(strconv.Itoa(r + 1))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("prefio: write result: %w", err)
	}
	return nil
}

// WriteInstance emits inst in the input format accepted by Read.
func WriteInstance(w io.Writer, inst matching.Instance) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(inst.N()))
	bw.WriteByte('\n')
	for _, table := range []matching.Preferences{inst.Hospitals, inst.Residents} {
		for _, list := range table {
			for i, v := range list {
				if i > 0 {
					bw.WriteByte(' ')
				}
				bw.WriteString(strconv.Itoa(v + 1))
			}
			bw.WriteByte('\n')
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("prefio: write instance: %w", err)
	}
	return nil
}
