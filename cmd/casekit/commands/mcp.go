package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/erraggy/casekit/internal/logging"
	"github.com/erraggy/casekit/internal/mcpserver"
)

// MCPFlags contains flags for the mcp command
type MCPFlags struct {
	Verbose bool
	Quiet   bool
}

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
// Returns the FlagSet and an MCPFlags struct with bound flag variables.
func SetupMCPFlags() (*flag.FlagSet, *MCPFlags) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	flags := &MCPFlags{}

	fs.BoolVar(&flags.Verbose, "verbose", false, "log each tool call at debug level (stderr)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: disable logging")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: disable logging")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: casekit mcp [flags]\n\n")
		Writef(output, "Serve the convert, tokenize and conventions tools over stdio using the\n")
		Writef(output, "Model Context Protocol. Logs are written to stderr.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nEnvironment:\n")
		Writef(output, "  CASEKIT_DEFAULT_CONVENTION  convention used when a call omits one (default: camel)\n")
		Writef(output, "  CASEKIT_FOLD_ACCENTS        fold accents unless a call says otherwise (default: false)\n")
		Writef(output, "  CASEKIT_MAX_INPUT_SIZE      maximum bytes per input (default: 1048576)\n")
		Writef(output, "  CASEKIT_MAX_BATCH_SIZE      maximum inputs per call (default: 1000)\n")
	}

	return fs, flags
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs, flags := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	if flags.Verbose && flags.Quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}

	slog.SetDefault(newMCPLogger(flags))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

func newMCPLogger(flags *MCPFlags) *slog.Logger {
	if flags.Quiet {
		return logging.Discard()
	}
	return logging.New(logging.Options{Verbose: flags.Verbose})
}
