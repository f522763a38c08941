package casing

import (
	"github.com/erraggy/casekit/caseerrors"
	"github.com/erraggy/casekit/internal/options"
)

// Option is a function that configures a conversion operation
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion operation
type convertConfig struct {
	// Input source (exactly one must be set)
	input     any
	hasInput  bool
	tokens    []string
	hasTokens bool

	// Configuration options
	convention  Convention
	foldAccents bool
}

// ConvertWithOptions converts text using functional options.
// The input source and the conversion settings are given together in a
// single call.
//
// Example:
//
//	result, err := casing.ConvertWithOptions(
//		casing.WithInput("my-variable_name"),
//		casing.WithConvention(casing.Dot),
//	)
func ConvertWithOptions(opts ...Option) (*ConvertResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	c := &Converter{
		Convention:  cfg.convention,
		FoldAccents: cfg.foldAccents,
	}

	if cfg.hasTokens {
		return c.ConvertTokens(cfg.tokens)
	}
	return c.Convert(cfg.input)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		convention: Camel,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"input",
		"must specify an input source (use WithInput or WithTokens)",
		"must specify exactly one input source",
		cfg.hasInput, cfg.hasTokens,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithInput specifies the value to convert as the input source.
// The value is validated when the conversion runs, so WithInput(nil)
// results in a *caseerrors.MissingValueError.
func WithInput(input any) Option {
	return func(cfg *convertConfig) error {
		cfg.input = input
		cfg.hasInput = true
		return nil
	}
}

// WithTokens specifies an existing token sequence as the input source
func WithTokens(tokens []string) Option {
	return func(cfg *convertConfig) error {
		cfg.tokens = tokens
		cfg.hasTokens = true
		return nil
	}
}

// WithConvention sets the target convention
// Default: Camel
func WithConvention(c Convention) Option {
	return func(cfg *convertConfig) error {
		if !c.Valid() {
			return &caseerrors.ConfigError{Option: "convention", Value: int(c), Message: "unknown convention"}
		}
		cfg.convention = c
		return nil
	}
}

// WithConventionName sets the target convention by name or alias,
// e.g. "kebab" or "dot.case"
func WithConventionName(name string) Option {
	return func(cfg *convertConfig) error {
		c, err := ParseConvention(name)
		if err != nil {
			return err
		}
		cfg.convention = c
		return nil
	}
}

// WithFoldAccents enables or disables reducing accented letters to their
// ASCII base before tokenizing
// Default: false
func WithFoldAccents(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.foldAccents = enabled
		return nil
	}
}
