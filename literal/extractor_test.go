package literal

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/coregx/markre/pattern"
)

func TestExtractor_Extract(t *testing.T) {
	tests := []struct {
		pattern string
		config  Config
		want    []Literal
	}{
		{"b", DefaultConfig(), []Literal{{[]byte("b"), true}}},
		{"bc", DefaultConfig(), []Literal{{[]byte("bc"), true}}},
		{"hello world", DefaultConfig(), []Literal{{[]byte("hello world"), true}}},
		{"abcdef", Config{MaxLiterals: 64, MaxLiteralLen: 4}, []Literal{{[]byte("abcd"), false}}},
		{"abcd", Config{MaxLiterals: 64, MaxLiteralLen: 4}, []Literal{{[]byte("abcd"), true}}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n, err := pattern.Parse(tt.pattern)
			if err != nil {
				t.Fatal(err)
			}
			defer n.Destroy()

			seq := New(tt.config).Extract(n)
			if diff := cmp.Diff(tt.want, seq.lits); diff != "" {
				t.Errorf("Extract(%q) mismatch (-want +got):\n%s", tt.pattern, diff)
			}
		})
	}
}

func TestExtractor_RightNested(t *testing.T) {
	n := pattern.NewConcat(pattern.NewSymbol('a'),
		pattern.NewConcat(pattern.NewSymbol('b'), pattern.NewSymbol('c')))
	seq := New(DefaultConfig()).Extract(n)
	if seq.Len() != 1 || string(seq.Get(0).Bytes) != "abc" || !seq.Get(0).Complete {
		t.Errorf("Extract = %v, want [literal{abc, complete=true}]", seq.lits)
	}
}

func TestExtractor_DestroyedTree(t *testing.T) {
	n := pattern.NewSymbol('a')
	n.Destroy()
	if seq := New(DefaultConfig()).Extract(n); !seq.IsEmpty() {
		t.Errorf("Extract(destroyed) = %v, want empty", seq.lits)
	}
}

func TestSeq_Dedup(t *testing.T) {
	s := NewSeq(
		NewLiteral([]byte("bc"), true),
		NewLiteral([]byte("ab"), true),
		NewLiteral([]byte("bc"), false),
		NewLiteral([]byte("ab"), true),
	)
	s.Dedup()
	want := []Literal{{[]byte("ab"), true}, {[]byte("bc"), false}}
	if diff := cmp.Diff(want, s.lits); diff != "" {
		t.Errorf("Dedup mismatch (-want +got):\n%s", diff)
	}
	if s.AllComplete() {
		t.Error("AllComplete should be false with an incomplete literal")
	}
	if got := s.MinLen(); got != 2 {
		t.Errorf("MinLen() = %d, want 2", got)
	}
}

func TestSeq_Empty(t *testing.T) {
	var s *Seq
	if !s.IsEmpty() || s.Len() != 0 {
		t.Error("nil Seq should be empty")
	}
	if NewSeq().AllComplete() {
		t.Error("empty Seq should not be complete")
	}
	if NewSeq().MinLen() != 0 {
		t.Error("empty Seq MinLen should be 0")
	}
}

func TestLiteral_String(t *testing.T) {
	if got := NewLiteral([]byte("test"), true).String(); got != "literal{test, complete=true}" {
		t.Errorf("String() = %s", got)
	}
}
