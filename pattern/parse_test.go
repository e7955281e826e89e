package pattern

import (
	"errors"
	"testing"
)

func TestParse_Grammar(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"b", "Symbol('b')"},
		{"bc", "Concat(Symbol('b'), Symbol('c'))"},
		{"abc", "Concat(Concat(Symbol('a'), Symbol('b')), Symbol('c'))"},
		{" ", "Symbol(' ')"},
		{"a-b", "Concat(Concat(Symbol('a'), Symbol('-')), Symbol('b'))"},
		{`a\`, `Concat(Symbol('a'), Symbol('\\'))`},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.pattern, err)
			}
			defer n.Destroy()
			if got := n.String(); got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		pattern string
		code    ErrorCode
		offset  int
	}{
		{"", CodeEmpty, 0},
		{"*", CodeLeadingOperator, 0},
		{"+", CodeLeadingOperator, 0},
		{"|", CodeLeadingOperator, 0},
		{"*a", CodeLeadingOperator, 0},
		{"(b", CodeUnbalanced, 2},
		{"a]", CodeUnbalanced, 2},
		{"{{}", CodeUnbalanced, 3},
		{"(b)", CodeUnexpectedMeta, 0},
		{"a.b", CodeUnexpectedMeta, 1},
		{"ab*", CodeUnexpectedMeta, 2},
		{"a?", CodeUnexpectedMeta, 1},
		{"^a", CodeUnexpectedMeta, 0},
		{"a$", CodeUnexpectedMeta, 1},
		{"a[b]", CodeUnexpectedMeta, 1},
		{"a|b", CodeTrailing, 1},
		{"ab)c(", CodeTrailing, 2},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) = %s, want error", tt.pattern, n)
			}
			if n != nil {
				t.Errorf("Parse(%q) returned a tree alongside the error", tt.pattern)
			}
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("error %v does not wrap ErrInvalidPattern", err)
			}
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not *Error", err)
			}
			if perr.Code != tt.code {
				t.Errorf("code = %v, want %v", perr.Code, tt.code)
			}
			if perr.Offset != tt.offset {
				t.Errorf("offset = %d, want %d", perr.Offset, tt.offset)
			}
			if perr.Pattern != tt.pattern {
				t.Errorf("pattern = %q, want %q", perr.Pattern, tt.pattern)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []string{"a", "abc", "(a)", "[x]", ")(", "a*"}
	for _, p := range valid {
		if err := Validate(p); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", p, err)
		}
	}
	invalid := []string{"", "*", "+a", "|", "(", "a)", "[[]"}
	for _, p := range invalid {
		if err := Validate(p); !errors.Is(err, ErrInvalidPattern) {
			t.Errorf("Validate(%q) = %v, want ErrInvalidPattern", p, err)
		}
	}
}

func TestIsMeta(t *testing.T) {
	for _, c := range []byte(".^$*?+|()[{") {
		if !IsMeta(c) {
			t.Errorf("IsMeta(%q) = false", c)
		}
	}
	for _, c := range []byte("abz09 ]}-\\") {
		if IsMeta(c) {
			t.Errorf("IsMeta(%q) = true", c)
		}
	}
}

func TestError_Message(t *testing.T) {
	_, err := Parse("ab*")
	want := `invalid pattern "ab*": unexpected metacharacter at offset 2`
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %s", err, want)
	}
}
