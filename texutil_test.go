package md2tex

import (
	"errors"
	"strings"
	"testing"
)

func TestEscapeTeX(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "plain",
			expected: "plain",
		},
		{
			name:     "backslash and tilde escaped individually",
			input:    "a\\b~c",
			expected: "a\\char`\\\\b\\char`\\~c",
		},
		{
			name:     "braces escaped",
			input:    "{x}",
			expected: "\\char`\\{x\\char`\\}",
		},
		{
			name:     "hash percent dollar escaped",
			input:    "#1 is 50% of $2",
			expected: "\\char`\\#1 is 50\\char`\\% of \\char`\\$2",
		},
		{
			name:     "replacement character encoded by code point",
			input:    "a�b",
			expected: "a\\char65533{}b",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := EscapeTeX(tt.input)
			if got != tt.expected {
				t.Errorf("EscapeTeX() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSmartQuotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no quotes unchanged",
			input:    "no quotes here",
			expected: "no quotes here",
		},
		{
			name:     "quote after space opens, quote after letter closes",
			input:    `He said "hi" to "me"`,
			expected: "He said “hi” to “me”",
		},
		{
			name:     "quote at start of text opens",
			input:    `"start`,
			expected: "“start",
		},
		{
			name:     "quote at start of line opens",
			input:    "one\n\"two\"",
			expected: "one\n“two”",
		},
		{
			name:     "adjacent quotes: second closes",
			input:    `""`,
			expected: "“”",
		},
		{
			name:     "quote after tab opens",
			input:    "a\t\"b\"",
			expected: "a\t“b”",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SmartQuotes(tt.input)
			if got != tt.expected {
				t.Errorf("SmartQuotes() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestToVerbatim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input emits nothing",
			input:    "",
			expected: "",
		},
		{
			name:     "plain run in brace style",
			input:    "abc",
			expected: "\\type{abc}",
		},
		{
			name:     "braces alone in plus style",
			input:    "{}",
			expected: "\\type+{}+",
		},
		{
			name:     "mixed input switches style per character class",
			input:    "a{b}c",
			expected: "\\type{a}\\type+{+\\type{b}\\type+}+\\type{c}",
		},
		{
			name:     "run of braces shares one plus run",
			input:    "x{{}}y",
			expected: "\\type{x}\\type+{{}}+\\type{y}",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ToVerbatim(tt.input)
			if got != tt.expected {
				t.Errorf("ToVerbatim() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// verbatimRun is one delimited run re-parsed from ToVerbatim output.
type verbatimRun struct {
	style   byte // '{' or '+'
	content string
}

// parseVerbatimRuns re-parses ToVerbatim output into its run structure.
func parseVerbatimRuns(t *testing.T, out string) []verbatimRun {
	t.Helper()

	var runs []verbatimRun
	for len(out) > 0 {
		if !strings.HasPrefix(out, "\\type") {
			t.Fatalf("expected \\type marker at %q", out)
		}
		out = out[len("\\type"):]
		if len(out) == 0 {
			t.Fatalf("truncated run opener")
		}
		style := out[0]
		var closer byte
		switch style {
		case '{':
			closer = '}'
		case '+':
			closer = '+'
		default:
			t.Fatalf("unknown run style %q", style)
		}
		end := strings.IndexByte(out[1:], closer)
		if end < 0 {
			t.Fatalf("unclosed %q run in %q", style, out)
		}
		runs = append(runs, verbatimRun{style: style, content: out[1 : 1+end]})
		out = out[2+end:]
	}
	return runs
}

// The transducer's guarantee: every character lands in a style that can
// represent it, runs alternate by character class, and nothing is lost.
func TestToVerbatim_RunStructure(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"a{b}c",
		"{}",
		"code with spaces",
		"fn() { return x; }",
		"}{",
		"{{{",
		"a+b{c+d}",
	}

	for _, input := range inputs {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			runs := parseVerbatimRuns(t, ToVerbatim(input))

			var rejoined strings.Builder
			for i, run := range runs {
				if run.content == "" {
					t.Errorf("run %d is empty", i)
				}
				switch run.style {
				case '{':
					if strings.ContainsAny(run.content, "{}") {
						t.Errorf("brace-style run %d contains a brace: %q", i, run.content)
					}
				case '+':
					if strings.Trim(run.content, "{}") != "" {
						t.Errorf("plus-style run %d carries non-brace characters: %q", i, run.content)
					}
				}
				if i > 0 && runs[i-1].style == run.style {
					t.Errorf("runs %d and %d share style %q without a transition", i-1, i, run.style)
				}
				rejoined.WriteString(run.content)
			}
			if rejoined.String() != input {
				t.Errorf("run contents rejoin to %q, want %q", rejoined.String(), input)
			}
		})
	}
}

func TestToVerbatim_PlusContentNote(t *testing.T) {
	t.Parallel()

	// A '+' in the input lands inside a brace-style run, where it is safe.
	got := ToVerbatim("a+b")
	want := "\\type{a+b}"
	if got != want {
		t.Errorf("ToVerbatim() = %q, want %q", got, want)
	}
}

func TestCollectText(t *testing.T) {
	t.Parallel()

	t.Run("text-only fragment concatenates", func(t *testing.T) {
		t.Parallel()

		frag := Fragment{
			{Kind: ElementText, Text: "line one\n"},
			{Kind: ElementText, Text: "line two"},
		}
		got, err := collectText(frag)
		if err != nil {
			t.Fatalf("collectText() error = %v", err)
		}
		if got != "line one\nline two" {
			t.Errorf("collectText() = %q", got)
		}
	})

	t.Run("non-text child is an error", func(t *testing.T) {
		t.Parallel()

		frag := Fragment{
			{Kind: ElementText, Text: "ok"},
			{Kind: ElementCode, Text: "nope"},
		}
		_, err := collectText(frag)
		if !errors.Is(err, ErrCodeBlockContent) {
			t.Errorf("collectText() error = %v, want ErrCodeBlockContent", err)
		}
	})
}

func TestCommentOut(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single line",
			input:    "<br/>",
			expected: "% <br/>\n",
		},
		{
			name:     "multiple lines each prefixed",
			input:    "<div>\n<p>x</p>\n</div>\n",
			expected: "% <div>\n% <p>x</p>\n% </div>\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := commentOut(tt.input)
			if got != tt.expected {
				t.Errorf("commentOut() = %q, want %q", got, tt.expected)
			}
		})
	}
}
