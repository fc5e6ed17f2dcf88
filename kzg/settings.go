// Trusted setup cache.
//
// Both backends load their trusted setup from resources compiled into the
// binary (go-eth-kzg and go-ethereum each embed the ceremony output), so a
// load never touches the filesystem or network. A load happens at most once
// per process: the first caller runs the loader, concurrent callers wait for
// it, and every caller sees the same value or the same error afterwards. A
// failed load is never retried.
package kzg

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eth2030/blobkzg/log"
	"github.com/eth2030/blobkzg/metrics"
)

// SettingsCache lazily materializes an immutable trusted setup of type T.
type SettingsCache[T any] struct {
	name string
	load func() (T, error)

	once   sync.Once
	value  T
	err    error
	loaded atomic.Bool
}

// NewSettingsCache returns a cache that runs load on first use. name labels
// logs, metrics and errors.
func NewSettingsCache[T any](name string, load func() (T, error)) *SettingsCache[T] {
	return &SettingsCache[T]{name: name, load: load}
}

// Get returns the cached setup, loading it if this is the first call. A load
// failure is returned as ErrSettingsInitFailed, to this and every later call.
func (c *SettingsCache[T]) Get() (T, error) {
	c.once.Do(c.init)
	return c.value, c.err
}

// Loaded reports whether a load has finished successfully, without
// triggering one.
func (c *SettingsCache[T]) Loaded() bool {
	return c.loaded.Load()
}

func (c *SettingsCache[T]) init() {
	logger := log.Default().Module("kzg").With("settings", c.name)
	start := time.Now()

	value, err := c.safeLoad()
	elapsed := time.Since(start)
	metrics.SettingsLoadTime.ObserveDuration(elapsed)

	if err != nil {
		c.err = newError("load_settings", ErrSettingsInitFailed, c.name, err)
		metrics.SettingsLoadFailures.Inc()
		logger.Error("trusted setup load failed", "err", err, "elapsed", elapsed)
		return
	}
	c.value = value
	c.loaded.Store(true)
	metrics.SettingsGauge(c.name).Set(1)
	logger.Info("trusted setup loaded", "elapsed", elapsed)
}

// safeLoad runs the loader, turning a panic inside the library into an error
// so the failure can be cached like any other.
func (c *SettingsCache[T]) safeLoad() (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			value, err = zero, fmt.Errorf("panic during load: %v", r)
		}
	}()
	return c.load()
}
