package ratecache

import (
	"errors"
	"fmt"
)

// ErrNotYetAvailable is returned by Read before the first successful refresh.
var ErrNotYetAvailable = errors.New("rate not yet available")

// ErrPairNotFound is returned by Lookup for a key that is not configured.
var ErrPairNotFound = errors.New("pair not found")

// ConfigError reports an unusable pair list. It is fatal at startup.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid pair configuration: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid pair configuration: %s", e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
