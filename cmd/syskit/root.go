package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jmgilman/syskit/config"
	"github.com/jmgilman/syskit/errors"
	"github.com/jmgilman/syskit/system"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Exit codes.
const (
	exitFailure = 1
	exitUsage   = 2
)

// app holds the state shared by all commands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// isTerminal reports whether stdout is a terminal.
	isTerminal func() bool
	// openSystem builds the System for a loaded configuration.
	openSystem func(cfg config.Config, logger *slog.Logger) (*system.System, error)

	configFile string
	logLevel   string
	jsonOut    bool

	cfg    config.Config
	logger *slog.Logger
	sys    *system.System
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		isTerminal: func() bool {
			f, ok := stdout.(*os.File)
			return ok && term.IsTerminal(int(f.Fd()))
		},
		openSystem: func(cfg config.Config, logger *slog.Logger) (*system.System, error) {
			return cfg.System(logger)
		},
		cfg:    config.Default(),
		logger: slog.New(slog.DiscardHandler),
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "syskit",
		Short: "Inspect and manipulate Unix paths",
		Long: `syskit exposes the syskit path and filesystem library on the command line.

Path commands (components, normalize, join, relative, common) are purely
lexical and never touch the filesystem. The remaining commands run against
the provider selected in the configuration file.

Exit Codes:
  0 - Success
  1 - Operation failed
  2 - Invalid arguments or configuration`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrap(err, errors.CodeInvalidArgument, err.Error())
	})

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "configuration file (default: "+config.FileName+" when present)")
	flags.StringVar(&a.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")
	flags.BoolVar(&a.jsonOut, "json", false, "write results and errors as JSON")

	root.AddCommand(
		a.componentsCmd(),
		a.normalizeCmd(),
		a.joinCmd(),
		a.relativeCmd(),
		a.commonCmd(),
		a.statCmd(),
		a.lsCmd(),
		a.mkdirCmd(),
		a.rmCmd(),
		a.chmodCmd(),
		a.realpathCmd(),
		a.pwdCmd(),
		a.tmpdirCmd(),
		a.catCmd(),
		a.appendCmd(),
		a.duCmd(),
	)
	return root
}

// setup loads the configuration and logger before any command runs.
func (a *app) setup(*cobra.Command, []string) error {
	name := a.configFile
	if name == "" {
		if _, err := os.Stat(config.FileName); err == nil {
			name = config.FileName
		}
	}

	if name != "" {
		cfg, err := config.LoadFile(name)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	if a.logLevel != "" {
		if _, err := config.ParseLevel(a.logLevel); err != nil {
			return err
		}
		a.cfg.LogLevel = a.logLevel
	}

	a.logger = a.cfg.Logger(a.stderr)
	a.logger.Debug("configuration loaded", "file", name, "provider", a.cfg.Provider)
	return nil
}

// system returns the System, building it on first use.
func (a *app) system() (*system.System, error) {
	if a.sys != nil {
		return a.sys, nil
	}
	sys, err := a.openSystem(a.cfg, a.logger)
	if err != nil {
		return nil, err
	}
	a.sys = sys
	return sys, nil
}

// printJSON writes v as indented JSON to stdout.
func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printError reports err on stderr, as JSON when --json is set.
func (a *app) printError(err error) {
	if a.jsonOut {
		enc := json.NewEncoder(a.stderr)
		_ = enc.Encode(errors.ToJSON(err))
		return
	}
	fmt.Fprintf(a.stderr, "syskit: %v\n", err)
}

// usage marks argument validation failures as INVALID_ARGUMENT.
func usage(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return errors.Wrap(err, errors.CodeInvalidArgument, err.Error())
		}
		return nil
	}
}

func exitCode(err error) int {
	if errors.GetCode(err) == errors.CodeInvalidArgument {
		return exitUsage
	}
	return exitFailure
}
