package prefilter

import "sync/atomic"

// Tracker wraps a Prefilter and retires it when it stops paying off.
//
// Every line checked costs a literal scan. If almost every line turns out to
// contain a candidate, the scan is pure overhead on top of mark propagation,
// so once the rejection rate falls below MinEfficiency (after a warmup) the
// tracker deactivates and Reject always answers false.
//
// A Tracker is safe for concurrent use.
type Tracker struct {
	inner Prefilter

	checks  atomic.Uint64
	rejects atomic.Uint64

	checkInterval uint64
	minEfficiency float64
	warmupPeriod  uint64

	active atomic.Bool
}

// TrackerConfig holds the retirement thresholds.
type TrackerConfig struct {
	// CheckInterval is how often, in checked lines, efficiency is evaluated.
	// Default: 64
	CheckInterval uint64

	// MinEfficiency is the minimum ratio of rejected to checked lines.
	// Default: 0.1
	MinEfficiency float64

	// WarmupPeriod is the number of lines checked before the first
	// evaluation. Default: 128
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default thresholds.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinEfficiency: 0.1,
		WarmupPeriod:  128,
	}
}

// NewTracker wraps inner with the default thresholds.
// Returns nil if inner is nil.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig wraps inner with custom thresholds.
// Returns nil if inner is nil.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}
	if config.CheckInterval == 0 {
		config.CheckInterval = 1
	}
	t := &Tracker{
		inner:         inner,
		checkInterval: config.CheckInterval,
		minEfficiency: config.MinEfficiency,
		warmupPeriod:  config.WarmupPeriod,
	}
	t.active.Store(true)
	return t
}

// Reject reports whether the line is proven not to match. It returns false
// once the tracker has retired the prefilter. A nil Tracker never rejects.
func (t *Tracker) Reject(haystack []byte) bool {
	if t == nil || !t.active.Load() {
		return false
	}
	rejected := Rejects(t.inner, haystack)
	n := t.checks.Add(1)
	if rejected {
		t.rejects.Add(1)
	}
	if n >= t.warmupPeriod && n%t.checkInterval == 0 {
		if t.Efficiency() < t.minEfficiency {
			t.active.Store(false)
		}
	}
	return rejected
}

// Efficiency returns the ratio of rejected to checked lines, 1 before any
// line has been checked.
func (t *Tracker) Efficiency() float64 {
	n := t.checks.Load()
	if n == 0 {
		return 1
	}
	return float64(t.rejects.Load()) / float64(n)
}

// IsActive reports whether the prefilter is still in use.
func (t *Tracker) IsActive() bool {
	return t != nil && t.active.Load()
}

// Inner returns the wrapped prefilter, or nil for a nil Tracker.
func (t *Tracker) Inner() Prefilter {
	if t == nil {
		return nil
	}
	return t.inner
}

// Reset reactivates the prefilter and clears the counters.
func (t *Tracker) Reset() {
	t.checks.Store(0)
	t.rejects.Store(0)
	t.active.Store(true)
}
