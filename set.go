package markre

import (
	"errors"
	"sync/atomic"

	"github.com/coregx/markre/literal"
	"github.com/coregx/markre/prefilter"
)

// Set matches several patterns at once. A line matches the set when any
// member matches it, and the set's marks are the union of the members'.
//
// Lines are screened with one Aho-Corasick pass over the literals of all
// members before any member runs.
type Set struct {
	regexes []*Regex
	tracker *prefilter.Tracker
	stats   counters
	closed  atomic.Bool
}

// CompileSet compiles every pattern with the default configuration. It fails
// on the first invalid pattern, releasing the ones already compiled.
func CompileSet(patterns []string) (*Set, error) {
	if len(patterns) == 0 {
		return nil, &CompileError{Err: errors.New("empty pattern set")}
	}
	s := &Set{regexes: make([]*Regex, 0, len(patterns))}
	lits := literal.NewSeq()
	extractor := literal.New(literal.DefaultConfig())
	for _, p := range patterns {
		re, err := Compile(p)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.regexes = append(s.regexes, re)
		lits.Add(extractor.Extract(re.tree))
	}
	lits.Dedup()
	s.tracker = prefilter.NewTracker(prefilter.Build(lits))
	return s, nil
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	return len(s.regexes)
}

// Patterns returns the source text of each member, in compile order.
func (s *Set) Patterns() []string {
	out := make([]string, len(s.regexes))
	for i, re := range s.regexes {
		out[i] = re.String()
	}
	return out
}

// Marks returns the union of every member's after vector for before.
func (s *Set) Marks(line []byte, before []bool) []bool {
	s.checkOpen()
	s.stats.scanned(line)
	if allSet(before) && s.tracker.Reject(line) {
		s.stats.prefilterRejects.Add(1)
		return make([]bool, len(line)+1)
	}
	union := make([]bool, len(line)+1)
	for _, re := range s.regexes {
		for i, m := range re.Marks(line, before) {
			union[i] = union[i] || m
		}
		s.stats.propagations.Add(1)
	}
	return union
}

// Match reports whether any member occurs in line.
func (s *Set) Match(line []byte) bool {
	s.checkOpen()
	s.stats.scanned(line)
	if s.tracker.Reject(line) {
		s.stats.prefilterRejects.Add(1)
		return false
	}
	for _, re := range s.regexes {
		if re.Match(line) {
			return true
		}
	}
	return false
}

// Stats returns the set-level counters. Member counters are kept by each
// member separately.
func (s *Set) Stats() Stats {
	return s.stats.snapshot()
}

// Close releases every member. Later calls return ErrClosed.
func (s *Set) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	var errs []error
	for _, re := range s.regexes {
		errs = append(errs, re.Close())
	}
	return errors.Join(errs...)
}

func (s *Set) checkOpen() {
	if s.closed.Load() {
		panic("markre: use of closed Set")
	}
}
