package markre_test

import (
	"fmt"
	"os"

	"github.com/coregx/markre"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	re, err := markre.Compile("bc")
	if err != nil {
		panic(err)
	}
	defer re.Close()

	fmt.Println(re.MatchString("abcd"))
	// Output: true
}

// ExampleRegex_Marks shows where matches of "bc" end.
func ExampleRegex_Marks() {
	re := markre.MustCompile("bc")
	defer re.Close()

	line := []byte("abcbcdbcb")
	before := make([]bool, len(line)+1)
	for i := range before {
		before[i] = true
	}
	after := re.Marks(line, before)
	for i, m := range after {
		if m {
			fmt.Print(i, " ")
		}
	}
	fmt.Println()
	// Output: 3 5 8
}

// ExampleReportMarks renders marks the way the mygrep driver prints them.
func ExampleReportMarks() {
	re := markre.MustCompile("b")
	defer re.Close()

	line := []byte("abc")
	_ = markre.ReportMarks(os.Stdout, line, re.MarksString("abc"))
	// Output:  a b*c
}

// ExampleCompileSet matches a line against several patterns.
func ExampleCompileSet() {
	set, err := markre.CompileSet([]string{"foo", "bar"})
	if err != nil {
		panic(err)
	}
	defer set.Close()

	fmt.Println(set.Match([]byte("a bar")), set.Match([]byte("baz")))
	// Output: true false
}
