package ratecache

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	pairArrow     = "->"
	commentPrefix = "#"
)

// ParsePairs reads one "BASE->QUOTE" pair per line. Blank lines, "#" comments and
// lines without an arrow are skipped; a line with an arrow but a bad code is a
// ConfigError.
func ParsePairs(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) || !strings.Contains(line, pairArrow) {
			continue
		}
		p, err := ParsePair(line)
		if err != nil {
			return nil, &ConfigError{Reason: fmt.Sprintf("line %d", lineNo), Err: err}
		}
		pairs = append(pairs, p)
	}
	if err := sc.Err(); err != nil {
		return nil, &ConfigError{Reason: "read pairs", Err: err}
	}
	return pairs, nil
}

// ParsePair parses a single "BASE->QUOTE" definition.
func ParsePair(s string) (Pair, error) {
	parts := strings.Split(s, pairArrow)
	if len(parts) != 2 {
		return Pair{}, fmt.Errorf("%q: expected BASE->QUOTE", s)
	}
	p := NewPair(parts[0], parts[1])
	if !p.Valid() {
		return Pair{}, fmt.Errorf("%q: invalid currency code", s)
	}
	return p, nil
}

// LoadPairsFile parses the pair list at path. A missing file is a ConfigError.
func LoadPairsFile(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Reason: "open " + path, Err: err}
	}
	defer f.Close() //nolint:errcheck // read-only

	return ParsePairs(f)
}
