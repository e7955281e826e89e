// Package markre provides a minimal regular-expression engine built on mark
// propagation.
//
// A pattern is parsed into a tree of pattern nodes. Matching sweeps a vector
// of candidate match boundaries through the tree: each node turns the set of
// positions where its match may start into the set where it may end. This
// simulates every thread of a nondeterministic automaton in lockstep without
// building the automaton and without backtracking.
//
// Basic usage:
//
//	re, err := markre.Compile("bc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer re.Close()
//
//	marks := re.MarksString("abcbcdbcb")
//	// marks[3], marks[5] and marks[8] are true: a "bc" ends there.
//
//	if re.MatchString("xbcx") {
//	    fmt.Println("matched!")
//	}
//
// Supported syntax: ordinary bytes and their concatenation. The
// metacharacters . ^ $ * ? + | ( ) [ { are reserved and rejected with
// ErrInvalidPattern. Matching is byte-oriented.
package markre

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/coregx/markre/literal"
	"github.com/coregx/markre/pattern"
	"github.com/coregx/markre/prefilter"
)

// ErrInvalidPattern is returned, wrapped, for every pattern the parser rejects.
var ErrInvalidPattern = pattern.ErrInvalidPattern

// ErrClosed is returned by Close on an already closed Regex or Set.
var ErrClosed = errors.New("markre: already closed")

// CompileError reports a pattern that failed to compile.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
// Parse errors already name the pattern and are returned unchanged.
func (e *CompileError) Error() string {
	var perr *pattern.Error
	if errors.As(e.Err, &perr) {
		return e.Err.Error()
	}
	return fmt.Sprintf("markre: Compile(%q): %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Regex is a compiled pattern.
//
// A Regex is safe for concurrent use by multiple goroutines, except Close,
// which must not race with matching.
type Regex struct {
	tree    *pattern.Node
	pattern string

	// tracker wraps the prefilter built from the tree's literal; complete
	// means a literal hit is a match, and litLen > 0 means every hit ends
	// litLen bytes after it starts.
	tracker  *prefilter.Tracker
	complete bool
	litLen   int

	scratch sync.Pool
	stats   counters
	closed  atomic.Bool
}

// Compile parses a pattern with the default configuration.
//
// Example:
//
//	re, err := markre.Compile("b")
//	if errors.Is(err, markre.ErrInvalidPattern) {
//	    fmt.Fprintln(os.Stderr, "Invalid pattern")
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern is invalid.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("markre: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig parses a pattern with custom configuration.
func CompileWithConfig(expr string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	tree, err := pattern.Parse(expr)
	if err != nil {
		return nil, &CompileError{Pattern: expr, Err: err}
	}

	re := &Regex{tree: tree, pattern: expr}
	re.scratch.New = func() any { return new(pattern.Scratch) }

	if config.EnablePrefilter {
		lits := literal.New(literal.Config{
			MaxLiterals:   literal.DefaultConfig().MaxLiterals,
			MaxLiteralLen: config.MaxLiteralLen,
		}).Extract(tree)
		if pf := prefilter.Build(lits); pf != nil {
			re.tracker = prefilter.NewTrackerWithConfig(pf, config.Tracker)
			re.complete = pf.IsComplete()
			re.litLen = pf.LiteralLen()
		}
	}
	return re, nil
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Tree returns the parsed pattern tree. The tree is owned by the Regex and
// must not be destroyed or attached to another node by the caller.
func (r *Regex) Tree() *pattern.Node {
	return r.tree
}

// Marks propagates before through the pattern over line and returns the
// after vector: after[i] is true iff a match starting at some marked j <= i
// ends exactly at i.
//
// before must have length len(line)+1. An all-true before asks "where can
// a match end if it may start anywhere".
func (r *Regex) Marks(line []byte, before []bool) []bool {
	r.checkOpen()
	if len(before) != len(line)+1 {
		panic("markre: marks length must be len(line)+1")
	}
	r.stats.scanned(line)
	after := make([]bool, len(line)+1)
	if !allSet(before) {
		r.propagate(line, before, after)
		return after
	}
	if r.litLen > 0 {
		// Every occurrence of the literal, overlapping ones included, is a
		// match ending litLen bytes later.
		pf := r.tracker.Inner()
		for pos := pf.Find(line, 0); pos >= 0; pos = pf.Find(line, pos+1) {
			after[pos+r.litLen] = true
		}
		r.stats.prefilterAnswers.Add(1)
		return after
	}
	if r.tracker.Reject(line) {
		r.stats.prefilterRejects.Add(1)
		return after
	}
	r.propagate(line, before, after)
	return after
}

// MarksString is Marks over a string with an all-true seed.
func (r *Regex) MarksString(line string) []bool {
	b := []byte(line)
	return r.Marks(b, pattern.AllMarks(len(b)))
}

// Match reports whether the pattern occurs anywhere in line.
func (r *Regex) Match(line []byte) bool {
	r.checkOpen()
	r.stats.scanned(line)
	if r.complete {
		r.stats.prefilterAnswers.Add(1)
		return r.tracker.Inner().Find(line, 0) >= 0
	}
	if r.tracker.Reject(line) {
		r.stats.prefilterRejects.Add(1)
		return false
	}
	after := make([]bool, len(line)+1)
	r.propagate(line, pattern.AllMarks(len(line)), after)
	return pattern.Marks(after).Any()
}

// MatchString reports whether the pattern occurs anywhere in s.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// Stats returns a snapshot of the execution counters.
func (r *Regex) Stats() Stats {
	return r.stats.snapshot()
}

// ResetStats clears the execution counters and reactivates a retired
// prefilter.
func (r *Regex) ResetStats() {
	r.stats.reset()
	if r.tracker != nil {
		r.tracker.Reset()
	}
}

// Close releases the pattern tree. It must be called at most once; later
// calls return ErrClosed. Matching on a closed Regex panics.
func (r *Regex) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	r.tree.Destroy()
	return nil
}

func (r *Regex) checkOpen() {
	if r.closed.Load() {
		panic("markre: use of closed Regex")
	}
}

func (r *Regex) propagate(line []byte, before, after []bool) {
	sc := r.scratch.Get().(*pattern.Scratch)
	r.tree.MatchInto(line, before, after, sc)
	r.scratch.Put(sc)
	r.stats.propagations.Add(1)
}

func allSet(marks []bool) bool {
	for _, m := range marks {
		if !m {
			return false
		}
	}
	return true
}
