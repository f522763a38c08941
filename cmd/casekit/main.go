package main

import (
	"fmt"
	"os"

	"github.com/erraggy/casekit"
	"github.com/erraggy/casekit/cmd/casekit/commands"
)

// commandHandlers maps each subcommand to its handler.
var commandHandlers = map[string]func([]string) error{
	"convert":     commands.HandleConvert,
	"tokenize":    commands.HandleTokenize,
	"conventions": commands.HandleConventions,
	"mcp":         commands.HandleMCP,
}

// knownCommands lists every command name, including the built-ins, for typo suggestions.
var knownCommands = []string{"convert", "tokenize", "conventions", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("casekit v%s\n", casekit.Version())
		fmt.Println(casekit.BuildInfo())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	handler, ok := commandHandlers[command]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err := handler(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := levenshtein(input, cmd); d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best
}

// levenshtein computes the edit distance between a and b using a single row.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur := min(row[j]+1, row[j-1]+1, prev+cost)
			prev = row[j]
			row[j] = cur
		}
	}
	return row[len(b)]
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `casekit - identifier naming convention converter

Usage:
  casekit <command> [flags] [args]

Commands:
  convert      Convert text to camel, kebab, dot, pascal or snake case
  tokenize     Show the words text is split into
  conventions  List the supported conventions
  mcp          Serve the casekit tools over MCP (stdio)
  version      Show version information
  help         Show this help message

Examples:
  casekit convert "hello world"
  casekit convert -t kebab camelCaseExample
  casekit tokenize "myHTTP-server_config v2"
  echo "This is a Test!@#" | casekit convert -t dot -

Run 'casekit <command> --help' for more information on a command.
`)
}
