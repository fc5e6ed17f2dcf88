package metrics

import "time"

// Span tracks one run of a named operation. Each span bumps
// "<name>.calls" when started and records its duration into "<name>.us";
// spans ended with a non-nil error also bump "<name>.failures".
type Span struct {
	name  string
	reg   *Registry
	timer *Timer
}

// Track starts a span in DefaultRegistry.
func Track(name string) *Span {
	return DefaultRegistry.Track(name)
}

// Track starts a span in r.
func (r *Registry) Track(name string) *Span {
	r.Counter(name + ".calls").Inc()
	return &Span{
		name:  name,
		reg:   r,
		timer: NewTimer(r.Histogram(name + ".us")),
	}
}

// End closes the span and returns its duration.
func (s *Span) End(err error) time.Duration {
	if err != nil {
		s.reg.Counter(s.name + ".failures").Inc()
	}
	return s.timer.Stop()
}
