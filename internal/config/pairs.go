package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"currencyservice/internal/ratecache"
)

// LoadPairs reads pairs.file (when set) and appends pairs.list. The result is
// not checked for emptiness here; ratecache.NewRegistry rejects an empty list.
func (c *Config) LoadPairs() ([]ratecache.Pair, error) {
	var pairs []ratecache.Pair

	if c.Pairs.File != "" {
		fromFile, err := ratecache.LoadPairsFile(c.Pairs.File)
		if err != nil {
			if len(c.Pairs.List) == 0 || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
			// An inline list is enough on its own; a missing default file is not fatal then.
			fmt.Printf("Pair file not loaded, using pairs.list only: %v\n", err)
		}
		pairs = append(pairs, fromFile...)
	}

	if len(c.Pairs.List) > 0 {
		inline, err := ratecache.ParsePairs(strings.NewReader(strings.Join(c.Pairs.List, "\n")))
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, inline...)
	}

	return pairs, nil
}
