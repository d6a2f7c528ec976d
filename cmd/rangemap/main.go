// Package main is the entry point for the rangemap CLI.
//
// rangemap converts numbers and number ranges through a chain of
// range-remapping stages and reports the lowest value reached.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"range-remapper/internal/app"
	"range-remapper/internal/config"
	"range-remapper/internal/definition"
	"range-remapper/internal/logging"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// globalFlags are shared by every command that reads a definition file.
type globalFlags struct {
	envFile   string
	format    string
	logLevel  string
	logFormat string
}

func rootCmd() *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "rangemap",
		Short: "Range remapping pipeline tool",
		Long: `rangemap reads stage definitions (almanac text or YAML), chains them from
the entry category to the terminal category and maps seed values and seed
ranges through the chain.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. RANGEMAP_* environment variables
  4. Command line flags

Environment variables:
  RANGEMAP_WORKERS     Query goroutines, 0 for one per CPU (default: 1)
  RANGEMAP_COALESCE    Merge touching intervals between stages (default: false)
  RANGEMAP_LOG_LEVEL   Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  RANGEMAP_LOG_FORMAT  Log format: console, json (default: console)
  RANGEMAP_FORMAT      Input format: auto, almanac, yaml (default: auto)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	pf.StringVar(&flags.format, "format", "", "Input format: auto, almanac, yaml")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: DEBUG, INFO, WARN, ERROR")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format: console, json")

	cmd.AddCommand(solveCmd(&flags))
	cmd.AddCommand(traceCmd(&flags))
	cmd.AddCommand(convertCmd(&flags))
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables,
// then applies the global flags that were set on the command line.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (config.Config, error) {
	cfg, err := config.Load(flags.envFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	fs := cmd.Flags()

	if fs.Changed("format") {
		if cfg.Format, err = definition.ParseFormat(flags.format); err != nil {
			return config.Config{}, err
		}
	}

	if fs.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}

	if fs.Changed("log-format") {
		if cfg.LogFormat, err = config.ParseLogFormat(flags.logFormat); err != nil {
			return config.Config{}, err
		}
	}

	return cfg, nil
}

// newSolver builds the solver and its logger. Logs go to stderr so results
// on stdout stay machine readable.
func newSolver(cmd *cobra.Command, cfg config.Config) (*app.Solver, error) {
	log, err := logging.New(cmd.ErrOrStderr(), "rangemap", version, logging.Format(cfg.LogFormat), cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return app.NewSolver(cfg, log.Child("solver")), nil
}
