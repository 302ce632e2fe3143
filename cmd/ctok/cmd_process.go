package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"ctok/cpp"
)

func newProcessCmd() *cobra.Command {
	var (
		noTokenize = envBool("CTOK_NO_TOKENIZE")
		noUnindent = envBool("CTOK_NO_UNINDENT")
		noLinenums = envBool("CTOK_NO_LINENUMS")
		debug      = envBool("CTOK_DEBUG")
	)

	cmd := &cobra.Command{
		Use:   "process [file]",
		Short: "Merge continuations, strip comments and tokenize",
		Long: `Read C-like source, merge backslash-continued lines, strip comments
while preserving string and character literals, and print one space-joined
token line per logical line.

If no file is provided, reads from stdin. Blank lines are suppressed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			if debug {
				commonlog.Configure(2, nil)
			}

			opts := cpp.Options{
				NoTokenize: noTokenize,
				KeepIndent: noUnindent,
				Debug:      debug,
			}
			return process(in, os.Stdout, opts, !noLinenums)
		},
	}

	cmd.Flags().BoolVar(&noTokenize, "no-tokenize", noTokenize, "emit stripped lines without tokenizing")
	cmd.Flags().BoolVar(&noUnindent, "no-unindent", noUnindent, "keep leading indentation as a token")
	cmd.Flags().BoolVar(&noLinenums, "no-linenums", noLinenums, "omit the line-number prefix")
	cmd.Flags().BoolVar(&debug, "debug", debug, "trace state-machine steps on stderr")

	return cmd
}

// process drives the pipeline and prints each surviving line, prefixed
// with the 1-based number of the first physical line it came from.
func process(in io.Reader, out io.Writer, opts cpp.Options, linenums bool) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	pipe := cpp.NewPipeline(in, opts)
	consumed := 0
	for {
		text, physical, ok, err := pipe.NextLine()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		first := consumed + 1
		consumed += physical
		if text == "" {
			continue
		}
		text = strings.TrimSuffix(text, "\n")
		if linenums {
			fmt.Fprintf(w, "%05d: %s\n", first, text)
		} else {
			fmt.Fprintln(w, text)
		}
	}
}

func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
