// Package argfile reads and writes native-image @argfiles.
//
// Syntax, as accepted by the Java launcher:
//   - Arguments are separated by whitespace, including newlines
//   - A # at the start of an argument comments out the rest of the line
//   - Single or double quotes group text containing whitespace
//   - Inside quotes a backslash escapes the next character; \n, \t, \r and
//     \f stand for the usual control characters
//   - Outside quotes a backslash is an ordinary character
package argfile

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrUnclosedQuote is returned when a quoted argument is not closed.
	ErrUnclosedQuote = errors.New("unclosed quote in argument file")

	// ErrTrailingEscape is returned when a backslash ends the input inside quotes.
	ErrTrailingEscape = errors.New("trailing escape character in argument file")
)

// Decode splits argfile content into arguments.
func Decode(input string) ([]string, error) {
	result := []string{}
	var current strings.Builder
	var quote rune // active quote character, 0 when outside quotes
	var inArg bool // current holds an argument, possibly empty ("")
	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if quote != 0 {
			switch ch {
			case quote:
				quote = 0
			case '\\':
				if i+1 >= len(runes) {
					return nil, ErrTrailingEscape
				}
				i++
				current.WriteRune(unescape(runes[i]))
			default:
				current.WriteRune(ch)
			}
			continue
		}

		switch {
		case unicode.IsSpace(ch):
			if inArg {
				result = append(result, current.String())
				current.Reset()
				inArg = false
			}
		case ch == '#' && !inArg:
			for i+1 < len(runes) && runes[i+1] != '\n' {
				i++
			}
		case ch == '"' || ch == '\'':
			quote = ch
			inArg = true
		default:
			current.WriteRune(ch)
			inArg = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("%w: missing closing %c", ErrUnclosedQuote, quote)
	}
	if inArg {
		result = append(result, current.String())
	}
	return result, nil
}

func unescape(ch rune) rune {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case 'f':
		return '\f'
	default:
		return ch
	}
}
