package commands

import (
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/erraggy/casekit/tokenizer"
)

// TokenizeFlags contains flags for the tokenize command
type TokenizeFlags struct {
	Format      string
	FoldAccents bool
}

// TokenizeResult is the structured output for one tokenized input.
type TokenizeResult struct {
	Input      string   `json:"input" yaml:"input"`
	Normalized string   `json:"normalized" yaml:"normalized"`
	Tokens     []string `json:"tokens" yaml:"tokens"`
}

// SetupTokenizeFlags creates and configures a FlagSet for the tokenize command.
// Returns the FlagSet and a TokenizeFlags struct with bound flag variables.
func SetupTokenizeFlags() (*flag.FlagSet, *TokenizeFlags) {
	fs := flag.NewFlagSet("tokenize", flag.ContinueOnError)
	flags := &TokenizeFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.FoldAccents, "fold-accents", false, "reduce accented letters to their ASCII base instead of dropping them")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: casekit tokenize [flags] <text>... | -\n\n")
		Writef(output, "Split text into the lowercase words every convention is built from.\n")
		Writef(output, "Text output prints the words of each input on one line, separated by spaces.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  casekit tokenize \"myHTTP-server_config v2\"\n")
		Writef(output, "  casekit tokenize --format yaml item2Name\n")
		Writef(output, "  cat names.txt | casekit tokenize -\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Tokenization successful\n")
		Writef(output, "  1    Invalid flags or input\n")
	}

	return fs, flags
}

// HandleTokenize executes the tokenize command
func HandleTokenize(args []string) error {
	fs, flags := SetupTokenizeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	texts, err := ReadInputs("tokenize", fs.Args(), os.Stdin)
	if err != nil {
		fs.Usage()
		return err
	}

	tok := &tokenizer.Tokenizer{FoldAccents: flags.FoldAccents}
	results := make([]TokenizeResult, 0, len(texts))
	for _, s := range texts {
		results = append(results, TokenizeResult{
			Input:      s,
			Normalized: tok.Normalize(s),
			Tokens:     tok.Tokenize(s),
		})
	}

	if flags.Format != FormatText {
		return OutputStructured(os.Stdout, results, flags.Format)
	}

	for _, r := range results {
		Writef(os.Stdout, "%s\n", strings.Join(r.Tokens, " "))
	}
	return nil
}
