package service

import (
	"time"

	"currencyservice/internal/ratecache"
)

// CurrencyResult represents the state of one configured pair.
// Value and UpdatedAt are set only once the pair is warm.
type CurrencyResult struct {
	Pair      string
	Base      string
	Quote     string
	Status    string
	Value     *float64
	UpdatedAt *string
	LastError *string
}

func currencyResultFromSnapshot(s ratecache.Snapshot) *CurrencyResult {
	r := &CurrencyResult{
		Pair:   s.Pair.Key(),
		Base:   s.Pair.Base,
		Quote:  s.Pair.Quote,
		Status: string(s.Status),
	}

	if s.Status == ratecache.StatusWarm {
		v := s.Value
		ts := s.UpdatedAt.Format(time.RFC3339)
		r.Value = &v
		r.UpdatedAt = &ts
	}
	if s.LastError != "" {
		msg := s.LastError
		r.LastError = &msg
	}

	return r
}
