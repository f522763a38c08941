// Package commands provides CLI command handlers for casekit.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/casekit/internal/cliutil"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinArg is the special argument used to indicate reading inputs from stdin.
const StdinArg = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w in the specified format (json or yaml).
// Returns an error if marshaling or writing fails.
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	if _, err := fmt.Fprintln(w, strings.TrimRight(string(bytes), "\n")); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// ReadInputs returns the texts named on the command line. A single "-"
// reads one text per line from stdin instead.
func ReadInputs(command string, args []string, stdin io.Reader) ([]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%s command requires at least one text argument or '-' for stdin", command)
	}
	for _, arg := range args {
		if arg == StdinArg && len(args) > 1 {
			return nil, fmt.Errorf("%s command: '-' cannot be combined with other arguments", command)
		}
	}
	if args[0] != StdinArg {
		return args, nil
	}
	lines, err := cliutil.ReadLines(stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// RenderTable renders rows under a header line as fixed-width columns.
// In quiet mode the header is omitted and cells are tab-separated for piping.
func RenderTable(w io.Writer, headers []string, rows [][]string, quiet bool) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		var sb strings.Builder
		for i, cell := range cells {
			switch {
			case quiet && i > 0:
				sb.WriteByte('\t')
			case i > 0:
				sb.WriteString("  ")
			}
			if quiet || i == len(cells)-1 {
				sb.WriteString(cell)
			} else {
				fmt.Fprintf(&sb, "%-*s", widths[i], cell)
			}
		}
		Writef(w, "%s\n", sb.String())
	}

	if !quiet {
		writeRow(headers)
	}
	for _, row := range rows {
		writeRow(row)
	}
}
