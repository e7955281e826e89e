package pattern

import "strings"

// metachars are the bytes with special meaning in the pattern syntax. Any
// other byte is ordinary and matches itself.
const metachars = ".^$*?+|()[{"

// IsMeta reports whether c is a metacharacter.
func IsMeta(c byte) bool {
	return strings.IndexByte(metachars, c) >= 0
}

// Validate performs the structural checks that do not need a parse: the
// pattern must be non-empty, must not start with '*', '+' or '|', and its
// brackets must balance by net count. Parse runs these checks itself.
func Validate(pattern string) error {
	if pattern == "" {
		return &Error{Code: CodeEmpty, Pattern: pattern}
	}
	switch pattern[0] {
	case '*', '+', '|':
		return &Error{Code: CodeLeadingOperator, Pattern: pattern}
	}
	depth := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		}
	}
	if depth != 0 {
		return &Error{Code: CodeUnbalanced, Pattern: pattern, Offset: len(pattern)}
	}
	return nil
}

// Parse builds the pattern tree for pattern. On failure the returned error
// is an *Error wrapping ErrInvalidPattern and no tree is returned.
//
// Precedence, highest first: atomic patterns, repetition, concatenation,
// alternation. Repetition and alternation currently pass their operand
// through unchanged.
func Parse(pattern string) (*Node, error) {
	if err := Validate(pattern); err != nil {
		return nil, err
	}
	p := &parser{pattern: pattern}
	n, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if p.more() {
		n.Destroy()
		return nil, p.errorf(CodeTrailing)
	}
	return n, nil
}

// parser is a cursor over the pattern bytes.
type parser struct {
	pattern string
	pos     int
}

func (p *parser) more() bool {
	return p.pos < len(p.pattern)
}

func (p *parser) peek() byte {
	return p.pattern[p.pos]
}

func (p *parser) errorf(code ErrorCode) *Error {
	return &Error{Code: code, Pattern: p.pattern, Offset: p.pos}
}

// parseAtomic consumes one ordinary byte.
func (p *parser) parseAtomic() (*Node, error) {
	if !p.more() || IsMeta(p.peek()) {
		return nil, p.errorf(CodeUnexpectedMeta)
	}
	c := p.peek()
	p.pos++
	return NewSymbol(c), nil
}

// parseRepetition parses an atomic pattern. The '*', '+' and '?' suffixes
// will bind here.
func (p *parser) parseRepetition() (*Node, error) {
	return p.parseAtomic()
}

// parseConcatenation parses a run of repetition-level patterns up to the end
// of input, '|' or ')', folding them left into Concat nodes.
func (p *parser) parseConcatenation() (*Node, error) {
	left, err := p.parseRepetition()
	if err != nil {
		return nil, err
	}
	for p.more() && p.peek() != '|' && p.peek() != ')' {
		right, err := p.parseRepetition()
		if err != nil {
			left.Destroy()
			return nil, err
		}
		left = NewConcat(left, right)
	}
	return left, nil
}

// parseAlternation parses a concatenation. The '|' operator will bind here.
func (p *parser) parseAlternation() (*Node, error) {
	return p.parseConcatenation()
}
