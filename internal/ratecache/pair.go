package ratecache

import (
	"regexp"
	"strings"
)

// KeySeparator joins base and quote codes into a pair key.
const KeySeparator = "_"

var currencyCodeRe = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

// Pair is an ordered (base, quote) currency pair.
type Pair struct {
	Base  string
	Quote string
}

// NewPair normalizes both codes to upper case.
func NewPair(base, quote string) Pair {
	return Pair{
		Base:  strings.ToUpper(strings.TrimSpace(base)),
		Quote: strings.ToUpper(strings.TrimSpace(quote)),
	}
}

// Key returns the lookup key, e.g. "USD_RUB".
func (p Pair) Key() string {
	return p.Base + KeySeparator + p.Quote
}

func (p Pair) String() string {
	return p.Base + "->" + p.Quote
}

// Valid reports whether both sides are well-formed currency codes.
func (p Pair) Valid() bool {
	return IsValidCurrencyCode(p.Base) && IsValidCurrencyCode(p.Quote)
}

// IsValidCurrencyCode checks whether a string is an upper-case alphanumeric code
// of 2 to 10 characters (covers ISO 4217 and common crypto tickers).
func IsValidCurrencyCode(code string) bool {
	return currencyCodeRe.MatchString(code)
}
