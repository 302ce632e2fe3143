package cpp

import (
	"regexp"
	"strings"
)

// TokenLine is an ordered sequence of preprocessing tokens. The empty
// TokenLine marks a blank line to be suppressed downstream.
type TokenLine []string

// Empty reports whether the line carried no tokens beyond its terminator.
func (tl TokenLine) Empty() bool {
	return len(tl) == 0 || (len(tl) == 1 && tl[0] == "\n")
}

// Join concatenates the tokens with exactly one separating space. A
// trailing terminator token attaches without a preceding space.
func (tl TokenLine) Join() string {
	if n := len(tl); n > 0 && tl[n-1] == "\n" {
		return strings.Join(tl[:n-1], " ") + "\n"
	}
	return strings.Join(tl, " ")
}

var (
	indentRE  = regexp.MustCompile(`^[ \t]+`)
	lineEndRE = regexp.MustCompile(`^[ \t]*(\n?)$`)

	// The include triple is matched only when it exhausts the usable
	// remainder: header names contain characters that would otherwise
	// split incorrectly.
	includeRE = regexp.MustCompile(`^[ \t]*#[ \t]*include[ \t]*(<[^>]*>)[ \t]*(\n?)$`)
)

// tokenRules are tried in priority order; each consumes horizontal
// whitespace around its match.
var tokenRules = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"identifier", regexp.MustCompile(`^[ \t]*([A-Za-z_$][A-Za-z0-9_$]*)[ \t]*`)},
	{"number", regexp.MustCompile(`^[ \t]*(\.?[0-9](?:[eEpP][+-]|[0-9A-Za-z_.])*)[ \t]*`)},
	{"string", regexp.MustCompile(`^[ \t]*("(?:` + escaped + `|[^"\\])*?")[ \t]*`)},
	{"char", regexp.MustCompile(`^[ \t]*('(?:` + escaped + `|[^'\\])*?')[ \t]*`)},
	{"operator", regexp.MustCompile(`^[ \t]*(<<=|>>=|\+\+|--|->|<<|>>|<=|>=|==|!=|&&|\|\||\+=|-=|\*=|/=|%=|&=|\^=|\|=|##)[ \t]*`)},
	{"punctuator", regexp.MustCompile(`^[ \t]*([^ \t\n])[ \t]*`)},
}

// Tokenizer splits one processed line into preprocessing tokens.
type Tokenizer struct {
	// KeepIndent preserves leading indentation as an explicit first
	// token instead of discarding it.
	KeepIndent bool
}

func (t *Tokenizer) Tokenize(line string) TokenLine {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	var tokens TokenLine
	rest := line

	if indent := indentRE.FindString(rest); indent != "" {
		if t.KeepIndent {
			tokens = append(tokens, indent)
		}
		rest = rest[len(indent):]
	}

	for {
		if m := lineEndRE.FindStringSubmatch(rest); m != nil {
			if m[1] != "" {
				tokens = append(tokens, m[1])
			}
			break
		}

		if m := includeRE.FindStringSubmatch(rest); m != nil {
			tokens = append(tokens, "#", "include", m[1])
			rest = m[2]
			continue
		}

		matched := false
		for _, r := range tokenRules {
			loc := r.pattern.FindStringSubmatchIndex(rest)
			if loc == nil {
				continue
			}
			tokens = append(tokens, rest[loc[2]:loc[3]])
			rest = rest[loc[1]:]
			matched = true
			break
		}
		if !matched {
			// The single-character fallback matches anything but
			// whitespace, which lineEndRE already handled.
			break
		}
	}

	if tokens.Empty() {
		return nil
	}
	return tokens
}
