package mcpserver

import (
	"fmt"

	"github.com/erraggy/casekit/casing"
	"github.com/erraggy/casekit/tokenizer"
)

// resolveTexts validates the two ways text can be provided to a tool and
// returns the texts to process in order. input carries one value and inputs
// a batch. Leaving both unset is reported as a missing value rather than
// converted as an empty string.
func resolveTexts(operation string, input *string, inputs []string) ([]string, error) {
	if input != nil && len(inputs) > 0 {
		return nil, fmt.Errorf("specify either input or inputs, not both")
	}
	if len(inputs) > cfg.MaxBatchSize {
		return nil, fmt.Errorf("too many inputs: %d (max %d)", len(inputs), cfg.MaxBatchSize)
	}

	texts := inputs
	if len(texts) == 0 {
		s, err := tokenizer.ValidateInput(operation, input)
		if err != nil {
			return nil, err
		}
		texts = []string{s}
	}

	for i, s := range texts {
		if len(s) > cfg.MaxInputSize {
			return nil, fmt.Errorf("input %d exceeds maximum size of %d bytes", i, cfg.MaxInputSize)
		}
	}
	return texts, nil
}

// resolveConvention parses name, falling back to the configured default.
func resolveConvention(name string) (casing.Convention, error) {
	if name == "" {
		return cfg.DefaultConvention, nil
	}
	return casing.ParseConvention(name)
}

// resolveFoldAccents returns the explicit setting or the configured default.
func resolveFoldAccents(v *bool) bool {
	if v == nil {
		return cfg.FoldAccents
	}
	return *v
}
