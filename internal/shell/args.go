package shell

import (
	"errors"
	"strings"
	"unicode"
)

// ErrUnterminatedQuote is returned for a line with an odd number of quotes.
var ErrUnterminatedQuote = errors.New("shell: unterminated quote")

// splitArgs splits line on whitespace. Double quotes group words, so
// "New York" is one argument; "" is an empty argument. No escapes.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inQuote bool
		started bool // cur holds an argument, possibly empty
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case unicode.IsSpace(r) && !inQuote:
			if started {
				args = append(args, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if inQuote {
		return nil, ErrUnterminatedQuote
	}
	if started {
		args = append(args, cur.String())
	}

	return args, nil
}
