package mcpserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/erraggy/casekit/tokenizer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type tokenizeInput struct {
	Input       *string  `json:"input,omitempty"        jsonschema:"The text to tokenize"`
	Inputs      []string `json:"inputs,omitempty"       jsonschema:"Several texts to tokenize in one call. Mutually exclusive with input."`
	FoldAccents *bool    `json:"fold_accents,omitempty" jsonschema:"Reduce accented letters to their ASCII base instead of dropping them"`
}

type tokenizeItem struct {
	Input      string   `json:"input"`
	Normalized string   `json:"normalized"`
	Tokens     []string `json:"tokens"`
}

type tokenizeOutput struct {
	Results    []tokenizeItem `json:"results,omitempty"`
	TokenCount int            `json:"token_count"`
	Summary    string         `json:"summary"`
}

func handleTokenize(_ context.Context, _ *mcp.CallToolRequest, input tokenizeInput) (*mcp.CallToolResult, tokenizeOutput, error) {
	texts, err := resolveTexts("tokenize", input.Input, input.Inputs)
	if err != nil {
		return errResult(err), tokenizeOutput{}, nil
	}

	tok := &tokenizer.Tokenizer{FoldAccents: resolveFoldAccents(input.FoldAccents)}

	output := tokenizeOutput{Results: makeSlice[tokenizeItem](len(texts))}
	for _, s := range texts {
		tokens := tok.Tokenize(s)
		output.TokenCount += len(tokens)
		output.Results = append(output.Results, tokenizeItem{
			Input:      s,
			Normalized: tok.Normalize(s),
			Tokens:     tokens,
		})
	}
	output.Summary = fmt.Sprintf("Split %d input(s) into %d token(s).", len(texts), output.TokenCount)

	slog.Debug("tokenize tool", "inputs", len(texts), "tokens", output.TokenCount)
	return nil, output, nil
}
