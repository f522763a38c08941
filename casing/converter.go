package casing

import (
	"github.com/erraggy/casekit/caseerrors"
	"github.com/erraggy/casekit/tokenizer"
)

// ConvertResult contains the results of converting one input
type ConvertResult struct {
	// Input is the validated input text
	Input string `json:"input" yaml:"input"`
	// Tokens are the lowercase words the input was split into
	Tokens []string `json:"tokens" yaml:"tokens"`
	// Convention is the convention Output is rendered in
	Convention Convention `json:"convention" yaml:"convention"`
	// Output is the formatted identifier
	Output string `json:"output" yaml:"output"`
}

// Converter handles conversion of text into naming conventions
type Converter struct {
	// Convention is the target convention. Default: Camel
	Convention Convention
	// FoldAccents reduces accented letters to their ASCII base before
	// tokenizing instead of dropping them. Default: false
	FoldAccents bool
}

// New creates a new Converter with default settings
func New() *Converter {
	return &Converter{
		Convention: Camel,
	}
}

// Convert validates input and converts it to the configured convention.
func (c *Converter) Convert(input any) (*ConvertResult, error) {
	s, err := tokenizer.ValidateInput("Convert", input)
	if err != nil {
		return nil, err
	}
	return c.ConvertString(s)
}

// ConvertString converts s to the configured convention.
// It only fails when the configured convention is not supported.
func (c *Converter) ConvertString(s string) (*ConvertResult, error) {
	tok := &tokenizer.Tokenizer{FoldAccents: c.FoldAccents}
	return c.render(s, tok.Tokenize(s))
}

// ConvertTokens renders an existing token sequence. Each token is passed
// through the tokenizer again so the result only holds [a-z0-9] words.
func (c *Converter) ConvertTokens(tokens []string) (*ConvertResult, error) {
	tok := &tokenizer.Tokenizer{FoldAccents: c.FoldAccents}
	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		words = append(words, tok.Tokenize(t)...)
	}
	return c.render("", words)
}

// ConvertAll converts every input in order, stopping at the first invalid one.
func (c *Converter) ConvertAll(inputs []string) ([]*ConvertResult, error) {
	results := make([]*ConvertResult, 0, len(inputs))
	for _, in := range inputs {
		result, err := c.ConvertString(in)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (c *Converter) render(input string, tokens []string) (*ConvertResult, error) {
	if !c.Convention.Valid() {
		return nil, &caseerrors.ConfigError{Option: "convention", Value: int(c.Convention), Message: "unknown convention"}
	}
	return &ConvertResult{
		Input:      input,
		Tokens:     tokens,
		Convention: c.Convention,
		Output:     Format(c.Convention, tokens),
	}, nil
}
