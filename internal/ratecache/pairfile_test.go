package ratecache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePairs(t *testing.T) {
	t.Run("parses and trims", func(t *testing.T) {
		in := "USD->RUB\n  eur -> jpy  \n\n# comment without arrow\nnot a pair\n"
		pairs, err := ParsePairs(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []Pair{{Base: "USD", Quote: "RUB"}, {Base: "EUR", Quote: "JPY"}}, pairs)
		assert.Equal(t, "USD_RUB", pairs[0].Key())
	})

	t.Run("commented-out pairs are skipped", func(t *testing.T) {
		in := "# USD->RUB\n  #EUR->JPY\n# USD->\nEUR->USD\n"
		pairs, err := ParsePairs(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []Pair{{Base: "EUR", Quote: "USD"}}, pairs)
	})

	t.Run("empty input yields no pairs", func(t *testing.T) {
		pairs, err := ParsePairs(strings.NewReader("\n\n"))
		require.NoError(t, err)
		assert.Empty(t, pairs)
	})

	t.Run("malformed arrow line is a config error", func(t *testing.T) {
		for _, line := range []string{"USD->", "->RUB", "USD->RUB->EUR", "US D->RUB", "USD_X->RUB"} {
			_, err := ParsePairs(strings.NewReader("USD->RUB\n" + line))
			var cfgErr *ConfigError
			if assert.ErrorAs(t, err, &cfgErr, "line %q", line) {
				assert.Contains(t, err.Error(), "line 2")
			}
		}
	})
}

func TestLoadPairsFile(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pairs.txt")
		require.NoError(t, os.WriteFile(path, []byte("USD->RUB\nEUR->USD\n"), 0o600))

		pairs, err := LoadPairsFile(path)
		require.NoError(t, err)
		assert.Len(t, pairs, 2)
	})

	t.Run("missing file is a config error", func(t *testing.T) {
		_, err := LoadPairsFile(filepath.Join(t.TempDir(), "nope.txt"))
		var cfgErr *ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})
}

func TestIsValidCurrencyCode(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"USD", true},
		{"USDT", true},
		{"usd", false}, // callers normalize first
		{"U", false},
		{"US$", false},
		{"USD_", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValidCurrencyCode(tc.code))
		})
	}
}
