package mcpserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/erraggy/casekit/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Input       *string  `json:"input,omitempty"        jsonschema:"The text to convert"`
	Inputs      []string `json:"inputs,omitempty"       jsonschema:"Several texts to convert in one call. Mutually exclusive with input."`
	Convention  string   `json:"convention,omitempty"   jsonschema:"Target convention: camel, kebab, dot, pascal or snake (aliases such as kebab-case are accepted)"`
	FoldAccents *bool    `json:"fold_accents,omitempty" jsonschema:"Reduce accented letters to their ASCII base instead of dropping them"`
}

type convertItem struct {
	Input  string   `json:"input"`
	Tokens []string `json:"tokens"`
	Output string   `json:"output"`
}

type convertOutput struct {
	Convention string        `json:"convention"`
	Results    []convertItem `json:"results,omitempty"`
	Summary    string        `json:"summary"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	texts, err := resolveTexts("convert", input.Input, input.Inputs)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	conv, err := resolveConvention(input.Convention)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	c := &casing.Converter{
		Convention:  conv,
		FoldAccents: resolveFoldAccents(input.FoldAccents),
	}
	results, err := c.ConvertAll(texts)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		Convention: conv.String(),
		Results:    makeSlice[convertItem](len(results)),
	}
	empty := 0
	for _, r := range results {
		if r.Output == "" {
			empty++
		}
		output.Results = append(output.Results, convertItem{
			Input:  r.Input,
			Tokens: r.Tokens,
			Output: r.Output,
		})
	}
	output.Summary = buildConvertSummary(len(results), empty, conv)

	slog.Debug("convert tool", "inputs", len(results), "convention", conv.String())
	return nil, output, nil
}

func buildConvertSummary(total, empty int, conv casing.Convention) string {
	noun := "inputs"
	if total == 1 {
		noun = "input"
	}
	summary := fmt.Sprintf("Converted %d %s to %s case.", total, noun, conv)
	if empty > 0 {
		summary += fmt.Sprintf(" %d produced an empty result (no ASCII letters or digits).", empty)
	}
	return summary
}
