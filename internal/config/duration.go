package config

import (
	"fmt"
	"strconv"
	"time"
)

// Duration is a time.Duration that can be unmarshaled from human-readable strings.
// Supports formats like "250ms", "1s", "1m30s", or plain integer milliseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	// Plain integers are read as milliseconds
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: must be like '250ms', '1s' or milliseconds: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
