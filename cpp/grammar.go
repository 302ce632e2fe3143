package cpp

import (
	"errors"
	"fmt"
	"regexp"
)

// lexState is the stripper's position relative to comments and literals.
type lexState int

const (
	stateDefault lexState = iota
	stateCheck
	stateDoubleQuote
	stateSingleQuote
	stateComment
)

var lexStateNames = map[lexState]string{
	stateDefault:     "Default",
	stateCheck:       "Check",
	stateDoubleQuote: "DoubleQuote",
	stateSingleQuote: "SingleQuote",
	stateComment:     "Comment",
}

func (s lexState) String() string {
	if name, ok := lexStateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// inLiteral reports whether the state must find a closing quote in the
// input it was handed. These states may not wait for another line.
func (s lexState) inLiteral() bool {
	return s == stateDoubleQuote || s == stateSingleQuote
}

var (
	ErrUnterminated     = errors.New("unterminated literal")
	ErrGrammarExhausted = errors.New("no grammar rule matched")
)

// escaped is the shared escape-aware unit: a backslash plus any single
// character, never split and never a comment or quote boundary.
const escaped = `\\.`

type ruleAction int

const (
	keepText ruleAction = iota // append the consumed text to the output
	keepSpace                  // append a single space in place of the match
	dropText                   // discard the match
	failLiteral                // abort: the quote named by rule.quote never closed
)

// rule is one priority-ordered grammar record. When the pattern has a
// capture group, only the group is consumed; the rest of the match is
// left for the next step.
type rule struct {
	pattern *regexp.Regexp
	act     ruleAction
	next    lexState
	quote   string
}

// grammar holds the per-state rule lists, evaluated top to bottom with
// first-match-wins. Every list ends in a catch-all, so a state that
// matches nothing is an internal invariant violation.
var grammar = map[lexState][]rule{
	stateDefault: {
		{pattern: regexp.MustCompile(`(?s)^((?:` + escaped + `|[^"'/\\])*)["'/]`), act: keepText, next: stateCheck},
		{pattern: regexp.MustCompile(`(?s)^.+`), act: keepText, next: stateDefault},
	},
	stateCheck: {
		{pattern: regexp.MustCompile(`^"`), act: keepText, next: stateDoubleQuote},
		{pattern: regexp.MustCompile(`^'`), act: keepText, next: stateSingleQuote},
		{pattern: regexp.MustCompile(`(?s)^//.*`), act: dropText, next: stateDefault},
		{pattern: regexp.MustCompile(`^[ \t]*/\*`), act: keepSpace, next: stateComment},
		{pattern: regexp.MustCompile(`(?s)^(?:` + escaped + `|.)`), act: keepText, next: stateDefault},
	},
	stateComment: {
		{pattern: regexp.MustCompile(`(?s)^.*?\*/[ \t]*`), act: dropText, next: stateDefault},
		{pattern: regexp.MustCompile(`(?s)^.+`), act: dropText, next: stateComment},
	},
	stateDoubleQuote: {
		{pattern: regexp.MustCompile(`(?s)^(?:` + escaped + `|[^"\\])*"`), act: keepText, next: stateDefault},
		{pattern: regexp.MustCompile(`(?s)^.*`), act: failLiteral, quote: "double quote"},
	},
	stateSingleQuote: {
		{pattern: regexp.MustCompile(`(?s)^(?:` + escaped + `|[^'\\])*'`), act: keepText, next: stateDefault},
		{pattern: regexp.MustCompile(`(?s)^.*`), act: failLiteral, quote: "single quote"},
	},
}

func unterminatedError(quote string) error {
	return fmt.Errorf("%w: %s never closed", ErrUnterminated, quote)
}
