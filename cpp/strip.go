package cpp

import (
	"fmt"
	"io"
	"strings"

	"github.com/tliron/commonlog"
)

var stripLog = commonlog.GetLogger("cpp.strip")

// Stripper removes comments from logical lines while preserving string
// and character literals verbatim. Its state persists across calls, so
// one instance serves exactly one input stream and must not be shared.
type Stripper struct {
	lines *LineReader
	state lexState
	out   strings.Builder
	debug bool
}

func NewStripper(r io.Reader) *Stripper {
	return &Stripper{lines: NewLineReader(r), state: stateDefault}
}

// Next returns the next processed line and the number of physical lines
// it covers. A block comment that crosses line boundaries pulls further
// logical lines into the same processed line. ok is false at end of
// input; if input ends inside an open block comment, the partial output
// is discarded silently.
func (s *Stripper) Next() (text string, physical int, ok bool, err error) {
	s.out.Reset()

	for {
		line, n, ok, err := s.lines.Read()
		if err != nil {
			return "", 0, false, err
		}
		if !ok {
			return "", 0, false, nil
		}
		physical += n

		rest := line
		for rest != "" || s.state.inLiteral() {
			rest, err = s.step(rest)
			if err != nil {
				return "", 0, false, err
			}
		}

		if s.state == stateDefault {
			return s.out.String(), physical, true, nil
		}
	}
}

// step applies the first matching rule of the current state to rest and
// returns what remains.
func (s *Stripper) step(rest string) (string, error) {
	for i, r := range grammar[s.state] {
		loc := r.pattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			continue
		}
		end := loc[1]
		text := rest[:end]
		if len(loc) > 2 && loc[2] >= 0 {
			end = loc[3]
			text = rest[loc[2]:loc[3]]
		}

		switch r.act {
		case keepText:
			s.out.WriteString(text)
		case keepSpace:
			s.out.WriteByte(' ')
		case dropText:
		case failLiteral:
			return "", unterminatedError(r.quote)
		}

		if s.debug {
			stripLog.Debugf("state=%s rule=%d consumed=%q next=%s", s.state, i, rest[:end], r.next)
		}
		s.state = r.next
		return rest[end:], nil
	}
	return "", fmt.Errorf("%w: state %s at %q", ErrGrammarExhausted, s.state, rest)
}
