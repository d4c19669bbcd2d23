package md2tex

import (
	"fmt"
	"strings"
	"unicode"
)

// Curly quote glyphs substituted for straight double quotes.
const (
	openQuote  = '“'
	closeQuote = '”'
)

// EscapeTeX escapes the characters that are significant to ConTeXt.
// The Unicode replacement character cannot be represented in the output
// dialect and is encoded by its code point instead.
func EscapeTeX(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, c := range text {
		switch c {
		case '\\', '~', '{', '}', '#', '%', '$':
			sb.WriteString("\\char`\\")
			sb.WriteRune(c)
		case '�':
			sb.WriteString("\\char65533{}")
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// SmartQuotes substitutes curly quote glyphs for straight double quotes.
// A quote opens when it is the first character of a line or immediately
// preceded by whitespace, and closes otherwise. Pure function: the decision
// is made per match from the preceding character alone.
func SmartQuotes(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	var prev rune
	start := true
	for _, c := range text {
		if c != '"' {
			sb.WriteRune(c)
		} else if start || unicode.IsSpace(prev) {
			sb.WriteRune(openQuote)
		} else {
			sb.WriteRune(closeQuote)
		}
		prev = c
		start = false
	}
	return sb.String()
}

// verbatimState tracks which delimiter style an inline verbatim run is in.
type verbatimState int

const (
	verbatimClosed  verbatimState = iota
	verbatimBraces                // inside \type{...}
	verbatimPlusses               // inside \type+...+
)

// ToVerbatim renders inline code using ConTeXt's two verbatim styles.
// \type{...} cannot contain unbalanced braces and \type+...+ cannot carry
// braces past its delimiter rules, so the run is split at every transition:
// brace characters land in plus-delimited runs and everything else in
// brace-delimited runs. Every input character is echoed after the state
// transition; the final run is closed at end of input.
func ToVerbatim(code string) string {
	var sb strings.Builder
	state := verbatimClosed
	for _, c := range code {
		switch c {
		case '{', '}':
			if state == verbatimBraces {
				sb.WriteString("}")
				state = verbatimClosed
			}
			if state == verbatimClosed {
				sb.WriteString("\\type+")
				state = verbatimPlusses
			}
		default:
			if state == verbatimPlusses {
				sb.WriteString("+")
				state = verbatimClosed
			}
			if state == verbatimClosed {
				sb.WriteString("\\type{")
				state = verbatimBraces
			}
		}
		sb.WriteRune(c)
	}
	switch state {
	case verbatimBraces:
		sb.WriteString("}")
	case verbatimPlusses:
		sb.WriteString("+")
	}
	return sb.String()
}

// collectText reduces a fragment to its literal text. Code blocks are the
// only construct constrained to text-only children, so anything else is an
// error.
func collectText(frag Fragment) (string, error) {
	var sb strings.Builder
	for _, elem := range frag {
		if elem.Kind != ElementText {
			return "", fmt.Errorf("%w: found %s", ErrCodeBlockContent, elem.Kind)
		}
		sb.WriteString(elem.Text)
	}
	return sb.String(), nil
}

// commentOut prefixes every line of raw markup with a ConTeXt comment
// marker, preserving it for inspection without executing it.
func commentOut(raw string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(raw, "\n"), "\n") {
		sb.WriteString("% ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
