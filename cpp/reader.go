package cpp

import (
	"bufio"
	"io"
	"regexp"
)

// continuationRE matches a backslash continuation marker at the end of a
// physical line: the backslash, optional horizontal whitespace, and the
// terminator.
var continuationRE = regexp.MustCompile(`\\[ \t]*\n$`)

// LineReader merges backslash-continued physical lines into logical lines.
type LineReader struct {
	r *bufio.Reader
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Read returns the next logical line and the number of physical lines it
// spans. ok is false only when no line could be read at all. If input ends
// in the middle of a continuation, whatever was accumulated is returned
// without a trailing terminator.
func (lr *LineReader) Read() (text string, physical int, ok bool, err error) {
	line, ok, err := lr.readPhysical()
	if err != nil || !ok {
		return "", 0, false, err
	}
	physical = 1

	for {
		loc := continuationRE.FindStringIndex(line)
		if loc == nil {
			return line, physical, true, nil
		}
		next, ok, err := lr.readPhysical()
		if err != nil {
			return "", 0, false, err
		}
		if !ok {
			return line[:loc[0]], physical, true, nil
		}
		line = line[:loc[0]] + next
		physical++
	}
}

func (lr *LineReader) readPhysical() (string, bool, error) {
	s, err := lr.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}
	if len(s) == 0 {
		return "", false, nil
	}
	return s, true, nil
}
