package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/hclview/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("hclview", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
hclview - inspect declarative view documents and their binding directives.

Usage:
  hclview [options] [VIEW_PATH]

Arguments:
  VIEW_PATH
    Path to a .view document to inspect.

Options:
`)
		flagSet.PrintDefaults()
	}

	viewFlag := flagSet.String("view", "", "Path to the view document.")
	vFlag := flagSet.String("v", "", "Path to the view document (shorthand).")
	prefixFlag := flagSet.String("prefix", "", "Reserved binding-attribute prefix. Defaults to 'bind'.")
	strictFlag := flagSet.Bool("strict", false, "Treat binding type mismatches as errors.")
	dumpFlag := flagSet.Bool("dump", false, "Print the full inspection report as YAML.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *viewFlag != "" {
		path = *viewFlag
	} else if *vFlag != "" {
		path = *vFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("View path determined.", "path", path)

	if path == "" {
		slog.Debug("No view path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ViewPath:        path,
		AttributePrefix: *prefixFlag,
		Strict:          *strictFlag,
		Dump:            *dumpFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "view", config.ViewPath)
	return config, false, nil
}
