// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes casekit conversions as MCP tools over stdio.
package mcpserver

import (
	"context"
	"log/slog"

	"github.com/erraggy/casekit"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `casekit MCP server: converts free-form text into identifier naming conventions (camel, kebab, dot, pascal, snake).

Text is split into lowercase ASCII words: separators are whitespace, '-' and '_', a lowercase letter or digit followed by an uppercase letter starts a new word, and every other character is dropped. Use tokenize to preview the words before converting.

Configuration: defaults are configurable via CASEKIT_* environment variables set in your MCP client config.

Key settings:
- CASEKIT_DEFAULT_CONVENTION (default: camel) - convention used when a call omits one
- CASEKIT_FOLD_ACCENTS (default: false) - reduce accented letters to their ASCII base instead of dropping them
- CASEKIT_MAX_INPUT_SIZE (default: 1048576) - maximum bytes per input
- CASEKIT_MAX_BATCH_SIZE (default: 1000) - maximum number of inputs per call`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := newServer()
	slog.Info("starting MCP server", "version", casekit.Version(), "default_convention", cfg.DefaultConvention.String())
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "casekit", Version: casekit.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert text into an identifier naming convention: camel (helloWorld), kebab (hello-world), dot (hello.world), pascal (HelloWorld) or snake (hello_world). Provide a single input or a batch via inputs. Acronyms are not preserved (HTTPWorld -> httpworld) and non-ASCII letters are dropped unless fold_accents is set. The default convention is configurable via CASEKIT_DEFAULT_CONVENTION.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tokenize",
		Description: "Split text into the lowercase words every convention is built from. Returns the tokens and the normalized text for each input. Useful to check how an input will be split before converting it.",
	}, handleTokenize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "conventions",
		Description: "List the supported naming conventions with their separator and an example rendering of \"hello world\".",
	}, handleConventions)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
