package pattern

import "github.com/coregx/markre/internal/scan"

// Match propagates the marks in before through the subtree and returns the
// resulting vector. after[i] is true iff some j <= i has before[j] set and
// the subtree matches input[j:i].
//
// before must have length len(input)+1. Match allocates; use MatchInto with
// a Scratch on hot paths.
func (n *Node) Match(input []byte, before []bool) Marks {
	after := make(Marks, len(input)+1)
	n.MatchInto(input, before, after, nil)
	return after
}

// MatchInto is Match writing into after, which must have length
// len(input)+1 and must not alias before. sc may be nil.
func (n *Node) MatchInto(input []byte, before, after []bool, sc *Scratch) {
	if len(before) != len(input)+1 || len(after) != len(input)+1 {
		panic("pattern: marks length must be len(input)+1")
	}
	if sc == nil {
		sc = new(Scratch)
	}
	n.match(input, before, after, sc)
}

func (n *Node) match(input []byte, before, after []bool, sc *Scratch) {
	switch n.kind {
	case KindSymbol:
		matchSymbol(n.sym, input, before, after)
	case KindConcat:
		mid := sc.acquire(len(before))
		n.left.match(input, before, mid, sc)
		n.right.match(input, mid, after, sc)
		sc.release()
	default:
		panic("pattern: match on destroyed node")
	}
}

// matchSymbol advances every live mark by one byte where that byte is c.
// Nothing can end at position 0 after consuming a symbol.
func matchSymbol(c byte, input []byte, before, after []bool) {
	clear(after)
	for i := scan.MemchrFrom(input, c, 0); i >= 0; i = scan.MemchrFrom(input, c, i+1) {
		after[i+1] = before[i]
	}
}
