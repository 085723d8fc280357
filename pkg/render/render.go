// Package render prints an argument vector in the formats the CLI offers.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"al.essio.dev/pkg/shellescape"

	"github.com/provide-io/flavor/go/substrate/pkg/argfile"
)

// Format selects an output representation.
type Format string

const (
	// FormatLines prints one raw argument per line.
	FormatLines Format = "lines"
	// FormatShell prints a single line that a POSIX shell splits back into
	// the same arguments.
	FormatShell Format = "shell"
	// FormatJSON prints a JSON array of strings.
	FormatJSON Format = "json"
	// FormatArgfile prints native-image @argfile syntax.
	FormatArgfile Format = "argfile"
)

// ErrUnknownFormat is returned for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatLines, FormatShell, FormatJSON, FormatArgfile}
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Render writes args to w in the given format.
func Render(w io.Writer, format Format, args []string) error {
	var out string
	switch format {
	case FormatLines:
		if len(args) > 0 {
			out = strings.Join(args, "\n") + "\n"
		}
	case FormatShell:
		out = shellescape.QuoteCommand(args) + "\n"
	case FormatJSON:
		if args == nil {
			args = []string{}
		}
		data, err := json.MarshalIndent(args, "", "  ")
		if err != nil {
			return err
		}
		out = string(data) + "\n"
	case FormatArgfile:
		out = argfile.Encode(args)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	_, err := io.WriteString(w, out)
	return err
}
