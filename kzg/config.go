package kzg

import (
	"errors"
	"fmt"
)

// Config selects and tunes a backend.
type Config struct {
	// Backend picks the implementation. The zero value means the
	// build-selected default.
	Backend Kind

	// Workers bounds go-eth-kzg's internal parallelism for commitment and
	// proof computation. 0 lets the library decide.
	Workers int
}

var errNegativeWorkers = errors.New("kzg: workers must not be negative")

// DefaultConfig returns the configuration Default() is built from.
func DefaultConfig() Config {
	return Config{Backend: defaultKind}
}

// Validate checks cfg for out-of-range values.
func (cfg Config) Validate() error {
	if cfg.Workers < 0 {
		return errNegativeWorkers
	}
	switch cfg.Backend {
	case 0, KindFull, KindVerifyOnly:
		return nil
	default:
		return fmt.Errorf("kzg: unknown backend kind %d", cfg.Backend)
	}
}
