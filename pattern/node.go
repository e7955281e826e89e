// Package pattern implements the pattern tree of the markre engine: the node
// sum type, mark propagation over it, and the recursive-descent parser that
// builds it.
//
// A tree is built once by Parse, matched any number of times, and released
// once with Destroy. Matching never mutates a tree, so one tree may serve
// concurrent Match calls as long as each call brings its own Scratch.
package pattern

import "strconv"

// Kind selects the variant of a Node.
type Kind uint8

const (
	// KindInvalid is the zero Kind, reported by destroyed nodes.
	KindInvalid Kind = iota

	// KindSymbol matches exactly one literal byte.
	KindSymbol

	// KindConcat matches its left child immediately followed by its right.
	KindConcat
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindSymbol:
		return "Symbol"
	case KindConcat:
		return "Concat"
	case KindInvalid:
		return "Invalid"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Node is one pattern tree node. The set of variants is closed; behavior is
// selected by switching on the kind.
//
// A Concat node exclusively owns both children: a node can be attached to at
// most one parent.
type Node struct {
	kind        Kind
	sym         byte
	left, right *Node
	attached    bool
}

// NewSymbol returns a node matching the single byte c.
func NewSymbol(c byte) *Node {
	return &Node{kind: KindSymbol, sym: c}
}

// NewConcat returns a node matching left followed by right, taking ownership
// of both. It panics if either child is nil, destroyed, already owned by
// another node, or if both arguments are the same node.
func NewConcat(left, right *Node) *Node {
	if left == nil || right == nil {
		panic("pattern: nil concatenation operand")
	}
	if left == right {
		panic("pattern: node used twice in one concatenation")
	}
	if left.attached || right.attached {
		panic("pattern: node already has a parent")
	}
	if left.kind == KindInvalid || right.kind == KindInvalid {
		panic("pattern: destroyed node used as operand")
	}
	left.attached = true
	right.attached = true
	return &Node{kind: KindConcat, left: left, right: right}
}

// Kind returns the node variant.
func (n *Node) Kind() Kind { return n.kind }

// Symbol returns the byte matched by a Symbol node, 0 otherwise.
func (n *Node) Symbol() byte { return n.sym }

// Left returns the first child of a Concat node, nil otherwise.
func (n *Node) Left() *Node { return n.left }

// Right returns the second child of a Concat node, nil otherwise.
func (n *Node) Right() *Node { return n.right }

// Len returns the number of input bytes any match of the subtree consumes.
// Every variant built so far is fixed-width.
func (n *Node) Len() int {
	switch n.kind {
	case KindSymbol:
		return 1
	case KindConcat:
		return n.left.Len() + n.right.Len()
	default:
		return 0
	}
}

// Size returns the number of nodes in the subtree.
func (n *Node) Size() int {
	switch n.kind {
	case KindSymbol:
		return 1
	case KindConcat:
		return 1 + n.left.Size() + n.right.Size()
	default:
		return 0
	}
}

// String renders the tree, e.g. Concat(Symbol('b'), Symbol('c')).
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.kind {
	case KindSymbol:
		return "Symbol(" + strconv.QuoteRuneToASCII(rune(n.sym)) + ")"
	case KindConcat:
		return "Concat(" + n.left.String() + ", " + n.right.String() + ")"
	default:
		return n.kind.String()
	}
}

// Destroy releases the subtree in post order: children first, then the node
// itself. Symbol nodes have nothing to release. Destroy must be called once
// per tree, on its root; afterwards every node of the tree reports
// KindInvalid and must not be matched.
func (n *Node) Destroy() {
	if n.kind == KindConcat {
		n.left.Destroy()
		n.right.Destroy()
	}
	n.left, n.right = nil, nil
	n.kind = KindInvalid
	n.sym = 0
}
