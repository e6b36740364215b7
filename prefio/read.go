package prefio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/stablematch/matching"
)

// maxLineBytes bounds a single input line; a line of n indices needs at most
// n·(digits+1) bytes.
const maxLineBytes = 64 << 20

// maxPrealloc caps table preallocation; the header size is untrusted until
// the lines backing it have been read.
const maxPrealloc = 1 << 12

// Read parses one market from r.
//
// Contract:
//   - Line 1 holds n ≥ 1 and nothing else.
//   - The next 2n lines hold exactly n whitespace-separated integers each,
//     forming a permutation of [1,n]. Blank lines count as short lines.
//   - Anything after line 2n+1 is ignored.
//
// Errors wrap matching.ErrInvalidInput; I/O errors are returned as-is.
func Read(r io.Reader) (matching.Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	line := 0
	next := func() ([]string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("prefio: line %d: %w", line+1, err)
			}
			return nil, invalidf(line+1, "unexpected end of input")
		}
		line++
		return strings.Fields(sc.Text()), nil
	}

	head, err := next()
	if err != nil {
		return matching.Instance{}, err
	}
	if len(head) != 1 {
		return matching.Instance{}, invalidf(line, "want a single size, got %d fields", len(head))
	}
	n, err := strconv.Atoi(head[0])
	if err != nil || n < 1 {
		return matching.Instance{}, invalidf(line, "size %q is not a positive integer", head[0])
	}

	var inst matching.Instance
	for _, side := range []matching.Side{matching.Hospitals, matching.Residents} {
		table := make(matching.Preferences, 0, min(n, maxPrealloc))
		for agent := 0; agent < n; agent++ {
			fields, err := next()
			if err != nil {
				return matching.Instance{}, err
			}
			list, err := parseList(fields, n)
			if err != nil {
				return matching.Instance{}, fmt.Errorf("prefio: line %d: %s %d: %w", line, side, agent+1, err)
			}
			table = append(table, list)
		}
		if side == matching.Hospitals {
			inst.Hospitals = table
		} else {
			inst.Residents = table
		}
	}

	if err = matching.Validate(inst); err != nil {
		return matching.Instance{}, fmt.Errorf("prefio: %w", err)
	}
	return inst, nil
}

// parseList converts n 1-based tokens into a 0-based permutation.
// Allocation is sized by the tokens actually present, never by n alone.
func parseList(fields []string, n int) (matching.PreferenceList, error) {
	if len(fields) != n {
		return nil, fmt.Errorf("got %d values, want %d: %w", len(fields), n, matching.ErrInvalidInput)
	}
	list := make(matching.PreferenceList, len(fields))
	seen := make([]bool, len(fields))
	for i, tok := range fields {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("value %q is not an integer: %w", tok, matching.ErrInvalidInput)
		}
		if v < 1 || v > n {
			return nil, fmt.Errorf("value %d out of range [1,%d]: %w", v, n, matching.ErrInvalidInput)
		}
		if seen[v-1] {
			return nil, fmt.Errorf("duplicate value %d: %w", v, matching.ErrInvalidInput)
		}
		seen[v-1] = true
		list[i] = v - 1
	}
	return list, nil
}

func invalidf(line int, format string, args ...any) error {
	return fmt.Errorf("prefio: line %d: %s: %w", line, fmt.Sprintf(format, args...), matching.ErrInvalidInput)
}
