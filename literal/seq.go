// Package literal extracts literal byte strings from pattern trees so that
// prefilters can reject lines before mark propagation runs.
//
// A Literal is a byte string every match must start with. When it is
// Complete, finding the literal is the same as finding a match.
package literal

import (
	"bytes"
	"sort"
)

// Literal is a byte sequence extracted from a pattern.
//
// Example:
//   - Pattern "hello" gives Literal{[]byte("hello"), true}
//   - A literal cut at MaxLiteralLen gives Complete=false (prefix only)
type Literal struct {
	Bytes []byte

	// Complete is true when matching Bytes is equivalent to matching the
	// whole pattern.
	Complete bool
}

// NewLiteral creates a Literal.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String formats the literal as literal{bytes, complete=...}.
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a set of alternative literals. A line can match only if it contains
// at least one of them.
type Seq struct {
	lits []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{lits: lits}
}

// Len returns the number of literals. A nil Seq is empty.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.lits)
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) Literal {
	return s.lits[i]
}

// IsEmpty reports whether the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// Add appends the literals of other.
func (s *Seq) Add(other *Seq) {
	if other == nil {
		return
	}
	s.lits = append(s.lits, other.lits...)
}

// AllComplete reports whether every literal is complete. An empty sequence
// is not complete.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, l := range s.lits {
		if !l.Complete {
			return false
		}
	}
	return true
}

// Dedup sorts the literals and removes duplicates. When the same bytes occur
// both complete and incomplete, the incomplete one wins so the set never
// claims more than it knows.
func (s *Seq) Dedup() {
	if s.Len() < 2 {
		return
	}
	sort.SliceStable(s.lits, func(i, j int) bool {
		return bytes.Compare(s.lits[i].Bytes, s.lits[j].Bytes) < 0
	})
	out := s.lits[:1]
	for _, l := range s.lits[1:] {
		last := &out[len(out)-1]
		if bytes.Equal(last.Bytes, l.Bytes) {
			last.Complete = last.Complete && l.Complete
			continue
		}
		out = append(out, l)
	}
	s.lits = out
}

// MinLen returns the length of the shortest literal, or 0 if empty.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	m := s.lits[0].Len()
	for _, l := range s.lits[1:] {
		if l.Len() < m {
			m = l.Len()
		}
	}
	return m
}
