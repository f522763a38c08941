package cliutil

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MaxLineSize is the longest single line ReadLines accepts.
const MaxLineSize = 1024 * 1024

// ReadLines reads r line by line. Trailing carriage returns are removed so
// CRLF input produces the same lines as LF input. Blank lines are kept to
// preserve the one-to-one mapping between input and output lines.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
