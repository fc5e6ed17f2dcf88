// Package metrics provides the small set of in-process instruments blobkzg
// uses to account for its own work: how often each KZG operation ran, how
// long it took and how often it was rejected. Nothing here does I/O, so the
// package is safe to link into sandboxed guest builds.
//
// Counter and Gauge are lock-free; Histogram takes a mutex per observation.
package metrics

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// Counter is a monotonically increasing count.
type Counter struct {
	name  string
	value atomic.Int64
}

// NewCounter returns a zeroed Counter.
func NewCounter(name string) *Counter { return &Counter{name: name} }

// Inc adds one.
func (c *Counter) Inc() { c.value.Add(1) }

// Add adds n. Non-positive values are dropped, counters never go down.
func (c *Counter) Add(n int64) {
	if n > 0 {
		c.value.Add(n)
	}
}

// Value returns the current count.
func (c *Counter) Value() int64 { return c.value.Load() }

// Name returns the metric name.
func (c *Counter) Name() string { return c.name }

// Gauge holds a value that may move in either direction, e.g. whether a
// trusted setup is currently loaded.
type Gauge struct {
	name  string
	value atomic.Int64
}

// NewGauge returns a zeroed Gauge.
func NewGauge(name string) *Gauge { return &Gauge{name: name} }

// Set stores v.
func (g *Gauge) Set(v int64) { g.value.Store(v) }

// Value returns the stored value.
func (g *Gauge) Value() int64 { return g.value.Load() }

// Name returns the metric name.
func (g *Gauge) Name() string { return g.name }

// Histogram summarises observed values (count, sum, min, max). blobkzg
// feeds it durations in microseconds.
type Histogram struct {
	name string

	mu    sync.Mutex
	count int64
	sum   float64
	min   float64
	max   float64
}

// NewHistogram returns an empty Histogram.
func NewHistogram(name string) *Histogram {
	return &Histogram{name: name, min: math.Inf(1), max: math.Inf(-1)}
}

// Observe records v.
func (h *Histogram) Observe(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += v
	h.min = math.Min(h.min, v)
	h.max = math.Max(h.max, v)
}

// ObserveDuration records d in microseconds.
func (h *Histogram) ObserveDuration(d time.Duration) {
	h.Observe(float64(d.Microseconds()))
}

// HistogramSnapshot is a consistent copy of a Histogram's state.
type HistogramSnapshot struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
}

// Mean returns Sum/Count, or 0 for an empty snapshot.
func (s HistogramSnapshot) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Snapshot returns the current state. Min and Max are 0 when nothing has
// been observed.
func (h *Histogram) Snapshot() HistogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.count == 0 {
		return HistogramSnapshot{}
	}
	return HistogramSnapshot{Count: h.count, Sum: h.sum, Min: h.min, Max: h.max}
}

// Count returns the number of observations.
func (h *Histogram) Count() int64 { return h.Snapshot().Count }

// Name returns the metric name.
func (h *Histogram) Name() string { return h.name }

// Timer measures one interval and reports it into a Histogram.
type Timer struct {
	start time.Time
	hist  *Histogram
	done  atomic.Bool
}

// NewTimer starts a timer reporting into h. h may be nil.
func NewTimer(h *Histogram) *Timer {
	return &Timer{start: time.Now(), hist: h}
}

// Stop returns the elapsed time. Only the first call records into the
// histogram.
func (t *Timer) Stop() time.Duration {
	d := time.Since(t.start)
	if t.hist != nil && t.done.CompareAndSwap(false, true) {
		t.hist.ObserveDuration(d)
	}
	return d
}
