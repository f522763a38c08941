package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/casekit/casing"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	To          string
	Format      string
	FoldAccents bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.To, "t", casing.Camel.String(), "target convention (camel, kebab, dot, pascal, snake)")
	fs.StringVar(&flags.To, "to", casing.Camel.String(), "target convention (camel, kebab, dot, pascal, snake)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.FoldAccents, "fold-accents", false, "reduce accented letters to their ASCII base instead of dropping them")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: casekit convert [flags] <text>... | -\n\n")
		Writef(output, "Convert text into an identifier naming convention.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nConventions:\n")
		for _, c := range casing.Conventions() {
			Writef(output, "  %-8s %s\n", c, c.Example())
		}
		Writef(output, "\nExamples:\n")
		Writef(output, "  casekit convert \"hello world\"\n")
		Writef(output, "  casekit convert -t kebab camelCaseExample PascalCaseExample\n")
		Writef(output, "  casekit convert --to snake --fold-accents \"Crème Brûlée\"\n")
		Writef(output, "  cat names.txt | casekit convert -t dot --format json -\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - Words are split on whitespace, '-', '_' and lowercase-to-uppercase transitions\n")
		Writef(output, "  - Characters other than ASCII letters and digits are dropped\n")
		Writef(output, "  - Use '-' to read one text per line from stdin\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Conversion successful\n")
		Writef(output, "  1    Invalid flags or input\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	conv, err := casing.ParseConvention(flags.To)
	if err != nil {
		return err
	}

	texts, err := ReadInputs("convert", fs.Args(), os.Stdin)
	if err != nil {
		fs.Usage()
		return err
	}

	c := &casing.Converter{Convention: conv, FoldAccents: flags.FoldAccents}
	results, err := c.ConvertAll(texts)
	if err != nil {
		return fmt.Errorf("converting: %w", err)
	}

	if flags.Format != FormatText {
		return OutputStructured(os.Stdout, results, flags.Format)
	}

	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(r.Output)
		sb.WriteByte('\n')
	}
	Writef(os.Stdout, "%s", sb.String())
	return nil
}
