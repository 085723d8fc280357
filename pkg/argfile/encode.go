package argfile

import (
	"strings"
	"unicode"
)

// Encode renders args one per line. Arguments that would not survive Decode
// unquoted are double-quoted with escapes.
func Encode(args []string) string {
	var b strings.Builder
	for _, arg := range args {
		b.WriteString(Quote(arg))
		b.WriteByte('\n')
	}
	return b.String()
}

// Quote returns arg in argfile syntax.
func Quote(arg string) string {
	if arg != "" && !strings.ContainsFunc(arg, needsQuote) {
		return arg
	}

	var b strings.Builder
	b.Grow(len(arg) + 2)
	b.WriteByte('"')
	for _, ch := range arg {
		switch ch {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(ch)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteRune(ch)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func needsQuote(ch rune) bool {
	return unicode.IsSpace(ch) || ch == '"' || ch == '\'' || ch == '\\' || ch == '#'
}
