package mcpserver

import (
	"context"

	"github.com/erraggy/casekit/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type conventionsInput struct{}

type conventionItem struct {
	Name      string `json:"name"`
	Separator string `json:"separator,omitempty"`
	Example   string `json:"example"`
	Default   bool   `json:"default,omitempty"`
}

type conventionsOutput struct {
	Conventions []conventionItem `json:"conventions"`
}

func handleConventions(_ context.Context, _ *mcp.CallToolRequest, _ conventionsInput) (*mcp.CallToolResult, conventionsOutput, error) {
	convs := casing.Conventions()
	output := conventionsOutput{Conventions: make([]conventionItem, 0, len(convs))}
	for _, c := range convs {
		output.Conventions = append(output.Conventions, conventionItem{
			Name:      c.String(),
			Separator: c.Separator(),
			Example:   c.Example(),
			Default:   c == cfg.DefaultConvention,
		})
	}
	return nil, output, nil
}
