package cpp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenizeStatements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TokenLine
	}{
		{"declaration", "int x = 5; \n", TokenLine{"int", "x", "=", "5", ";", "\n"}},
		{"stripped comment tail", "int x = 5; ", TokenLine{"int", "x", "=", "5", ";"}},
		{"string with comment lookalike", "x = \"a//b\";\n", TokenLine{"x", "=", "\"a//b\"", ";", "\n"}},
		{"char literal", "c = 'x';\n", TokenLine{"c", "=", "'x'", ";", "\n"}},
		{"escaped quote in string", "s = \"a\\\"b\";\n", TokenLine{"s", "=", "\"a\\\"b\"", ";", "\n"}},
		{"call", "printf(\"%d\", x);\n", TokenLine{"printf", "(", "\"%d\"", ",", "x", ")", ";", "\n"}},
		{"indented", "    return 0;\n", TokenLine{"return", "0", ";", "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tok Tokenizer
			got := tok.Tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeInclude(t *testing.T) {
	var tok Tokenizer
	got := tok.Tokenize("#include <foo/bar.h>\n")
	want := TokenLine{"#", "include", "<foo/bar.h>", "\n"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeIncludeNotAlone(t *testing.T) {
	// The triple form only applies when it exhausts the line;
	// otherwise the pieces split by the ordinary rules.
	var tok Tokenizer
	got := tok.Tokenize("#include <a> x\n")
	if len(got) < 4 || got[0] != "#" || got[1] != "include" {
		t.Fatalf("Tokenize() = %v", got)
	}
	for _, token := range got {
		if token == "<a>" {
			t.Errorf("header token %q should not survive outside the triple form", token)
		}
	}
}

func TestTokenizeOperators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TokenLine
	}{
		{"shift assign", "a<<=b\n", TokenLine{"a", "<<=", "b", "\n"}},
		{"shift right assign", "a>>=b\n", TokenLine{"a", ">>=", "b", "\n"}},
		{"increment", "i++;\n", TokenLine{"i", "++", ";", "\n"}},
		{"arrow", "p->x\n", TokenLine{"p", "->", "x", "\n"}},
		{"comparison chain", "a<=b==c\n", TokenLine{"a", "<=", "b", "==", "c", "\n"}},
		{"logical", "a&&b||c\n", TokenLine{"a", "&&", "b", "||", "c", "\n"}},
		{"paste", "a##b\n", TokenLine{"a", "##", "b", "\n"}},
		{"single char falls through", "a<b\n", TokenLine{"a", "<", "b", "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tok Tokenizer
			got := tok.Tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42;\n", "42"},
		{"3.14;\n", "3.14"},
		{".5;\n", ".5"},
		{"1e10;\n", "1e10"},
		{"1.5e+10;\n", "1.5e+10"},
		{"1.5E-3;\n", "1.5E-3"},
		{"0x1p+4;\n", "0x1p+4"},
		{"0xDEADbeef;\n", "0xDEADbeef"},
		{"123ul;\n", "123ul"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var tok Tokenizer
			got := tok.Tokenize(tt.input)
			want := TokenLine{tt.want, ";", "\n"}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeIdentifiers(t *testing.T) {
	tests := []string{"foo", "_bar", "$sys", "camelCase", "with123"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			var tok Tokenizer
			got := tok.Tokenize(input + "\n")
			want := TokenLine{input, "\n"}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeBlankLines(t *testing.T) {
	for _, input := range []string{"", "\n", "   \n", "\t \t\n", "   "} {
		t.Run("blank", func(t *testing.T) {
			var tok Tokenizer
			if got := tok.Tokenize(input); !got.Empty() {
				t.Errorf("Tokenize(%q) = %v, want empty", input, got)
			}
		})
	}
}

func TestTokenizeKeepIndent(t *testing.T) {
	tok := Tokenizer{KeepIndent: true}
	got := tok.Tokenize("\t  x = 1;\n")
	want := TokenLine{"\t  ", "x", "=", "1", ";", "\n"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenLineJoin(t *testing.T) {
	tests := []struct {
		name   string
		tokens TokenLine
		want   string
	}{
		{"with terminator", TokenLine{"int", "x", ";", "\n"}, "int x ;\n"},
		{"without terminator", TokenLine{"int", "x", ";"}, "int x ;"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tokens.Join(); got != tt.want {
				t.Errorf("Join() = %q, want %q", got, tt.want)
			}
		})
	}
}
