package pattern

import "strings"

// Marks is a mark vector for an input of length n: n+1 booleans indexed by
// the gaps around the input bytes. Marks[i] means a match of the pattern
// consumed so far can end immediately before input position i.
type Marks []bool

// NewMarks returns an all-false vector for an input of length n.
func NewMarks(n int) Marks {
	return make(Marks, n+1)
}

// AllMarks returns an all-true vector for an input of length n: the seed for
// "the pattern may start anywhere".
func AllMarks(n int) Marks {
	m := make(Marks, n+1)
	for i := range m {
		m[i] = true
	}
	return m
}

// Any reports whether at least one mark is set.
func (m Marks) Any() bool {
	for _, v := range m {
		if v {
			return true
		}
	}
	return false
}

// Count returns the number of set marks.
func (m Marks) Count() int {
	c := 0
	for _, v := range m {
		if v {
			c++
		}
	}
	return c
}

// Positions returns the indices of the set marks in ascending order.
func (m Marks) Positions() []int {
	var out []int
	for i, v := range m {
		if v {
			out = append(out, i)
		}
	}
	return out
}

// String renders the vector as a row of '1' and '0'.
func (m Marks) String() string {
	var b strings.Builder
	b.Grow(len(m))
	for _, v := range m {
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Scratch holds intermediate mark vectors for concatenation so repeated
// matches do not allocate. The zero value is ready to use. A Scratch must
// not be shared between goroutines.
type Scratch struct {
	bufs [][]bool
	top  int
}

// acquire returns a vector of length n from the stack.
func (s *Scratch) acquire(n int) []bool {
	if s.top == len(s.bufs) {
		s.bufs = append(s.bufs, nil)
	}
	b := s.bufs[s.top]
	if cap(b) < n {
		b = make([]bool, n)
	} else {
		b = b[:n]
	}
	s.bufs[s.top] = b
	s.top++
	return b
}

// release pops the most recently acquired vector.
func (s *Scratch) release() {
	s.top--
}
