package cpp

import (
	"io"
	"strings"
)

// Options are the externally supplied switches for one pipeline run.
type Options struct {
	NoTokenize bool // emit stripped lines without tokenizing
	KeepIndent bool // keep leading indentation as an explicit token
	Debug      bool // trace every state-machine step
}

// Pipeline composes line assembly, comment stripping and tokenization
// into a single line source.
type Pipeline struct {
	strip *Stripper
	tok   Tokenizer
	opts  Options
}

func NewPipeline(r io.Reader, opts Options) *Pipeline {
	strip := NewStripper(r)
	strip.debug = opts.Debug
	return &Pipeline{
		strip: strip,
		tok:   Tokenizer{KeepIndent: opts.KeepIndent},
		opts:  opts,
	}
}

// NextLine returns the next output line and the number of physical lines
// consumed for it. A blank line comes back as the empty string so the
// caller can suppress it while still advancing its line counter. ok is
// false once the stream and the stripper are exhausted.
func (p *Pipeline) NextLine() (text string, physical int, ok bool, err error) {
	line, physical, ok, err := p.strip.Next()
	if err != nil || !ok {
		return "", physical, ok, err
	}

	if p.opts.NoTokenize {
		if strings.TrimSpace(line) == "" {
			return "", physical, true, nil
		}
		return line, physical, true, nil
	}

	tokens := p.tok.Tokenize(line)
	if tokens.Empty() {
		return "", physical, true, nil
	}
	return tokens.Join(), physical, true, nil
}
