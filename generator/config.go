package generator

import "github.com/lauralsoraluce/setforge/bitset"

// Config bounds a randomly generated instance.
type Config struct {
	// FMin, FMax bound the number of base sets generated (inclusive).
	FMin, FMax int
	// FSizeMin, FSizeMax bound the cardinality of each base set (inclusive).
	FSizeMin, FSizeMax int
}

// DefaultConfig mirrors the thesis reference instance's defaults.
func DefaultConfig() Config {
	return Config{
		FMin:     10,
		FMax:     100,
		FSizeMin: 1,
		FSizeMax: 64,
	}
}

// Validate checks internal consistency of cfg against the bitset
// universe width.
func (cfg Config) Validate() error {
	if cfg.FMin < 0 || cfg.FMax < cfg.FMin {
		return ErrInvalidRange
	}
	if cfg.FSizeMin < 0 || cfg.FSizeMax < cfg.FSizeMin {
		return ErrInvalidRange
	}
	if cfg.FSizeMax > bitset.Width {
		return ErrSizeExceedsWidth
	}
	return nil
}
