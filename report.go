package markre

import "io"

// MarkSymbol frames a byte whose preceding boundary is marked.
const MarkSymbol = '*'

// FormatMarks renders line with its marks: each byte is preceded by
// MarkSymbol if the boundary before it is marked and by a space otherwise,
// and one more symbol or space follows for the end-of-line boundary.
//
// For pattern "b" over "abc" the after marks render as " a b*c ".
func FormatMarks(line []byte, marks []bool) string {
	return string(appendMarks(nil, line, marks))
}

// ReportMarks writes FormatMarks(line, marks) followed by a newline.
func ReportMarks(w io.Writer, line []byte, marks []bool) error {
	buf := appendMarks(make([]byte, 0, 2*len(line)+2), line, marks)
	_, err := w.Write(append(buf, '\n'))
	return err
}

func appendMarks(dst, line []byte, marks []bool) []byte {
	if len(marks) != len(line)+1 {
		panic("markre: marks length must be len(line)+1")
	}
	for i, c := range line {
		dst = append(dst, markByte(marks[i]), c)
	}
	return append(dst, markByte(marks[len(line)]))
}

func markByte(set bool) byte {
	if set {
		return MarkSymbol
	}
	return ' '
}
