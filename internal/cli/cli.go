package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vk/cubecount/internal/app"
	"github.com/vk/cubecount/internal/bag"
	"github.com/vk/cubecount/internal/config"
	"github.com/vk/cubecount/internal/report"
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

const longHelp = `CubeCount - sums the IDs of cube games a bag could have produced.

Each line of the input looks like:
  Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green

Flag defaults can also be set with the CUBECOUNT_BAG_FILE, CUBECOUNT_POLICY,
CUBECOUNT_STRICT_COLORS, CUBECOUNT_OUTPUT, CUBECOUNT_LOG_FORMAT and
CUBECOUNT_LOG_LEVEL environment variables.`

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	defaults, err := config.ParseEnv()
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	var parsed *app.Config
	cmd := newRootCmd(defaults, func(cfg *app.Config) {
		parsed = cfg
	})
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if parsed == nil {
		// Help was requested or no input was given; usage is already printed.
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", parsed)
	return parsed, false, nil
}

func newRootCmd(defaults config.Env, onParsed func(*app.Config)) *cobra.Command {
	var (
		inputPath    string
		bagPath      string
		policy       string
		strictColors bool
		output       string
		logFormat    string
		logLevel     string
	)

	cmd := &cobra.Command{
		Use:           "cubecount [flags] [INPUT_PATH]",
		Short:         "Sum the IDs of cube games that fit in a bag",
		Long:          longHelp,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := inputPath
			if path == "" && len(args) > 0 {
				path = args[0]
			}
			slog.Debug("Input path determined.", "path", path)

			if path == "" {
				slog.Debug("No input path provided, printing usage and exiting.")
				return cmd.Usage()
			}

			cfg, err := app.NewConfig(app.Config{
				InputPath:    path,
				BagPath:      bagPath,
				Policy:       bag.Policy(policy),
				StrictColors: strictColors,
				Output:       report.Format(output),
				LogFormat:    logFormat,
				LogLevel:     logLevel,
			})
			if err != nil {
				return err
			}
			onParsed(cfg)
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVarP(&inputPath, "input", "i", "", "Path to the puzzle input file.")
	flags.StringVarP(&bagPath, "bag", "b", defaults.BagFile, "Path to an HCL file with the bag capacity.")
	flags.StringVar(&policy, "policy", defaults.Policy, "How draws are combined per color. Options: 'max' or 'sum'.")
	flags.BoolVar(&strictColors, "strict-colors", defaults.StrictColors, "Reject unknown color names instead of ignoring them.")
	flags.StringVarP(&output, "output", "o", defaults.Output, "Result format. Options: 'text', 'json' or 'yaml'.")
	flags.StringVar(&logFormat, "log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&logLevel, "log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	return cmd
}
