// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// GoCommand ends ballot entry when read on a line of its own.
const GoCommand = `\go`

// MaxBallots caps the ballots one set of lines may expand to.
const MaxBallots = 100_000

var ErrTooManyBallots = errors.New("too many ballots")

// ParseLine parses one input line of the form "[count ]ranking".
// A leading 32-bit integer followed by a space is a repeat count; any other
// prefix, including an out-of-range number, is part of the ranking and the
// count is 1. A line with no candidates returns a nil ballot.
func ParseLine(line string) (int, *Ballot) {
	line = strings.TrimSpace(line)
	count := 1

	if i := strings.IndexByte(line, ' '); i != -1 && i < len(line)-1 {
		if n, err := strconv.ParseInt(line[:i], 10, 32); err == nil {
			count = int(n)
			line = line[i+1:]
		}
	}

	b := Parse(line)
	if b.Len() == 0 {
		return 0, nil
	}
	return max(count, 0), b
}

// Expand turns ballot lines into ballots, repeating each one by its count.
// Every repeat is a distinct ballot. It fails with ErrTooManyBallots before
// cloning past MaxBallots.
func Expand(lines []string) ([]*Ballot, error) {
	var ballots []*Ballot
	for _, line := range lines {
		count, b := ParseLine(line)
		if b == nil {
			continue
		}
		if count > MaxBallots-len(ballots) {
			return nil, fmt.Errorf("%w: more than %d", ErrTooManyBallots, MaxBallots)
		}
		for range count {
			ballots = append(ballots, b.Clone())
		}
	}
	return ballots, nil
}

// ReadLines reads ballot lines from r until EOF or a GoCommand line.
func ReadLines(r io.Reader) ([]*Ballot, error) {
	lines, err := ScanLines(r)
	if err != nil {
		return nil, err
	}
	return Expand(lines)
}

// ScanLines returns the trimmed, non-blank lines of r up to EOF or a
// GoCommand line, without parsing them.
func ScanLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, GoCommand) {
			return lines, nil
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ballots: %w", err)
	}

	return lines, nil
}
