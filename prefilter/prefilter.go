// Package prefilter finds candidate match positions from extracted literals
// so that lines which cannot match skip mark propagation entirely.
//
// The builder picks a strategy from the literal set:
//   - Single byte -> memchr
//   - Single substring -> memmem
//   - Several literals -> Aho-Corasick automaton
//   - No literals -> nil (no prefilter)
//
// Example:
//
//	seq := literal.New(literal.DefaultConfig()).Extract(tree)
//	pf := prefilter.Build(seq)
//	if pf != nil && pf.Find(line, 0) < 0 {
//	    // line cannot match
//	}
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/markre/internal/scan"
	"github.com/coregx/markre/literal"
)

// Prefilter reports candidate positions where a match may start.
type Prefilter interface {
	// Find returns the index of the first candidate at or after start, or
	// -1 if there is none. A candidate is not a guaranteed match unless
	// IsComplete is true.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is always a real match.
	IsComplete() bool

	// LiteralLen returns the match length for complete single-literal
	// prefilters, 0 otherwise.
	LiteralLen() int
}

// Build constructs the best prefilter for seq, or nil when seq is empty or
// the automaton cannot be built.
func Build(seq *literal.Seq) Prefilter {
	if seq.IsEmpty() || seq.MinLen() == 0 {
		return nil
	}
	complete := seq.AllComplete()
	if seq.Len() == 1 {
		lit := seq.Get(0)
		if lit.Len() == 1 {
			return &memchrPrefilter{needle: lit.Bytes[0], complete: complete}
		}
		return &memmemPrefilter{needle: lit.Bytes, complete: complete}
	}
	return newAhoCorasickPrefilter(seq, complete)
}

type memchrPrefilter struct {
	needle   byte
	complete bool
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	return scan.MemchrFrom(haystack, p.needle, start)
}

func (p *memchrPrefilter) IsComplete() bool { return p.complete }

func (p *memchrPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

type memmemPrefilter struct {
	needle   []byte
	complete bool
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	pos := scan.Memmem(haystack[start:], p.needle)
	if pos < 0 {
		return -1
	}
	return start + pos
}

func (p *memmemPrefilter) IsComplete() bool { return p.complete }

func (p *memmemPrefilter) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

// ahoCorasickPrefilter searches for any of several literals in one pass.
type ahoCorasickPrefilter struct {
	auto     *ahocorasick.Automaton
	complete bool
}

func newAhoCorasickPrefilter(seq *literal.Seq, complete bool) Prefilter {
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoCorasickPrefilter{auto: auto, complete: complete}
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsMatch reports whether any literal occurs in haystack.
func (p *ahoCorasickPrefilter) IsMatch(haystack []byte) bool {
	return p.auto.IsMatch(haystack)
}

func (p *ahoCorasickPrefilter) IsComplete() bool { return p.complete }

// LiteralLen is 0: the literals have different lengths.
func (p *ahoCorasickPrefilter) LiteralLen() int { return 0 }

// Rejects reports whether pf proves that haystack holds no candidate.
// A nil prefilter never rejects.
func Rejects(pf Prefilter, haystack []byte) bool {
	if pf == nil {
		return false
	}
	if ac, ok := pf.(*ahoCorasickPrefilter); ok {
		return !ac.IsMatch(haystack)
	}
	return pf.Find(haystack, 0) < 0
}
