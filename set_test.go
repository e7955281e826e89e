package markre

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/coregx/markre/pattern"
)

func TestCompileSet(t *testing.T) {
	set, err := CompileSet([]string{"foo", "bar", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	defer set.Close()

	if set.Len() != 3 {
		t.Errorf("Len() = %d, want 3", set.Len())
	}
	if diff := cmp.Diff([]string{"foo", "bar", "foo"}, set.Patterns()); diff != "" {
		t.Errorf("Patterns (-want +got):\n%s", diff)
	}
}

func TestCompileSet_Errors(t *testing.T) {
	if _, err := CompileSet(nil); err == nil {
		t.Error("empty set should fail")
	}
	_, err := CompileSet([]string{"ok", "(bad"})
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("error = %v, want ErrInvalidPattern", err)
	}
}

func TestSet_Match(t *testing.T) {
	set, err := CompileSet([]string{"foo", "bar"})
	if err != nil {
		t.Fatal(err)
	}
	defer set.Close()

	tests := []struct {
		line string
		want bool
	}{
		{"foo", true},
		{"a bar b", true},
		{"fo ba", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := set.Match([]byte(tt.line)); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
	if st := set.Stats(); st.PrefilterRejects != 2 {
		t.Errorf("PrefilterRejects = %d, want 2", st.PrefilterRejects)
	}
}

func TestSet_MarksUnion(t *testing.T) {
	set, err := CompileSet([]string{"b", "bc"})
	if err != nil {
		t.Fatal(err)
	}
	defer set.Close()

	line := []byte("abcbcdbcb")
	got := set.Marks(line, pattern.AllMarks(len(line)))
	// "b" ends at 2, 4, 7, 9 and "bc" at 3, 5, 8.
	want := []int{2, 3, 4, 5, 7, 8, 9}
	if diff := cmp.Diff(want, positions(got)); diff != "" {
		t.Errorf("marks mismatch (-want +got):\n%s", diff)
	}

	if got := set.Marks([]byte("xyz"), pattern.AllMarks(3)); pattern.Marks(got).Any() {
		t.Errorf("marks on non-matching line: %v", got)
	}
}

func TestSet_Close(t *testing.T) {
	set, err := CompileSet([]string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	trees := []*pattern.Node{set.regexes[0].Tree(), set.regexes[1].Tree()}
	if err := set.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	for i, tree := range trees {
		if tree.Kind() != pattern.KindInvalid {
			t.Errorf("member %d not released", i)
		}
	}
	if err := set.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close = %v, want ErrClosed", err)
	}
}
