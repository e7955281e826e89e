package literal

import "github.com/coregx/markre/pattern"

// Config bounds literal extraction.
type Config struct {
	// MaxLiterals limits the number of alternatives kept. Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the length of each literal; longer literals are
	// cut and become prefixes. Default: 64.
	MaxLiteralLen int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() Config {
	return Config{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
	}
}

// Extractor walks pattern trees and collects prefix literals.
type Extractor struct {
	config Config
}

// New creates an Extractor with the given configuration.
func New(config Config) *Extractor {
	return &Extractor{config: config}
}

// Extract returns the literals every match of n starts with.
//
// Examples:
//
//	"b"   -> [literal{b, complete=true}]
//	"bc"  -> [literal{bc, complete=true}]
//
// A destroyed tree yields an empty Seq.
func (e *Extractor) Extract(n *pattern.Node) *Seq {
	return NewSeq(e.extract(n)...)
}

func (e *Extractor) extract(n *pattern.Node) []Literal {
	switch n.Kind() {
	case pattern.KindSymbol:
		return []Literal{NewLiteral([]byte{n.Symbol()}, true)}
	case pattern.KindConcat:
		return e.cross(e.extract(n.Left()), e.extract(n.Right()))
	default:
		return nil
	}
}

// cross appends each right literal to each complete left literal. Incomplete
// left literals are already prefixes and stay as they are.
func (e *Extractor) cross(left, right []Literal) []Literal {
	if len(left) == 0 {
		return nil
	}
	if len(right) == 0 || len(left)*len(right) > e.config.MaxLiterals {
		return markIncomplete(left)
	}
	out := make([]Literal, 0, len(left)*len(right))
	for _, l := range left {
		if !l.Complete {
			out = append(out, l)
			continue
		}
		for _, r := range right {
			b := make([]byte, 0, len(l.Bytes)+len(r.Bytes))
			b = append(append(b, l.Bytes...), r.Bytes...)
			complete := r.Complete
			if e.config.MaxLiteralLen > 0 && len(b) > e.config.MaxLiteralLen {
				b = b[:e.config.MaxLiteralLen]
				complete = false
			}
			out = append(out, NewLiteral(b, complete))
		}
	}
	return out
}

func markIncomplete(lits []Literal) []Literal {
	out := make([]Literal, len(lits))
	for i, l := range lits {
		out[i] = NewLiteral(l.Bytes, false)
	}
	return out
}
