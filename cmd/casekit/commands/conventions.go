package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/casekit/casing"
)

// ConventionsFlags contains flags for the conventions command
type ConventionsFlags struct {
	Format string
	Quiet  bool
}

// ConventionInfo describes one supported convention.
type ConventionInfo struct {
	Name      string `json:"name" yaml:"name"`
	Separator string `json:"separator" yaml:"separator"`
	Example   string `json:"example" yaml:"example"`
}

// SetupConventionsFlags creates and configures a FlagSet for the conventions command.
// Returns the FlagSet and a ConventionsFlags struct with bound flag variables.
func SetupConventionsFlags() (*flag.FlagSet, *ConventionsFlags) {
	fs := flag.NewFlagSet("conventions", flag.ContinueOnError)
	flags := &ConventionsFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: omit the table header and separate columns with tabs")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: omit the table header and separate columns with tabs")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: casekit conventions [flags]\n\n")
		Writef(output, "List the supported naming conventions.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  casekit conventions\n")
		Writef(output, "  casekit conventions --format json\n")
	}

	return fs, flags
}

// HandleConventions executes the conventions command
func HandleConventions(args []string) error {
	fs, flags := SetupConventionsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("conventions command takes no arguments")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	convs := casing.Conventions()
	infos := make([]ConventionInfo, 0, len(convs))
	for _, c := range convs {
		infos = append(infos, ConventionInfo{
			Name:      c.String(),
			Separator: c.Separator(),
			Example:   c.Example(),
		})
	}

	if flags.Format != FormatText {
		return OutputStructured(os.Stdout, infos, flags.Format)
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		sep := info.Separator
		if sep == "" {
			sep = "(none)"
		}
		rows = append(rows, []string{info.Name, sep, info.Example})
	}
	RenderTable(os.Stdout, []string{"NAME", "SEPARATOR", "EXAMPLE"}, rows, flags.Quiet)
	return nil
}
