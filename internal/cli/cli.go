// Package cli wires the cobra command tree: the root command runs the form,
// tokens lists the catalog, and validate checks a swap request without a
// terminal UI.
package cli

import (
	"fmt"

	"github.com/atomicstack/swap-form/internal/app"
	"github.com/atomicstack/swap-form/internal/config"
	"github.com/atomicstack/swap-form/internal/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	exitInvalid = 1
	exitConfig  = 2
)

// ExitError carries the process exit code for a failed command. A nil Err
// means the command already reported the failure.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func configError(err error) error {
	return &ExitError{Code: exitConfig, Err: err}
}

// StartFunc sees the resolved configuration before a command runs and may
// fill in runtime details such as the terminal size.
type StartFunc func(*config.Config)

// RunFunc runs the interactive form.
type RunFunc func(app.Config) error

type runner struct {
	cfg   config.Config
	args  []string
	start StartFunc
	run   RunFunc
}

// NewRootCommand builds the command tree over args. run defaults to app.Run.
func NewRootCommand(args []string, start StartFunc, run RunFunc) *cobra.Command {
	if run == nil {
		run = app.Run
	}
	// non-nil so cobra never falls back to os.Args
	r := &runner{args: append([]string{}, args...), start: start, run: run}
	root := &cobra.Command{
		Use:   "swap-form",
		Short: "Fill in and validate a token swap request",
		Long: `swap-form renders a token swap request form in the terminal: pick the
token to send, enter an amount, pick the token to receive, then submit.

Examples:
  swap-form
  swap-form --variant plain --footer
  swap-form tokens --symbol us
  swap-form validate --send ETH --amount 0.5 --receive USDC`,
		Version:           "0.1.0",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.load,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(r.cfg.App)
		},
	}
	config.RegisterFlags(root.PersistentFlags())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return configError(err)
	})
	root.AddCommand(newTokensCommand(r), newValidateCommand(r))
	root.SetArgs(r.args)
	return root
}

func (r *runner) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromFlags(cmd.Flags())
	if err != nil {
		return configError(err)
	}
	if err := config.Validate(cfg); err != nil {
		return configError(err)
	}
	cfg.Args = r.args
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	if r.start != nil {
		r.start(&cfg)
	}
	r.cfg = cfg
	return nil
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(args []string, start StartFunc) int {
	root := NewRootCommand(args, start, nil)
	return exitCode(root, root.Execute())
}

func exitCode(root *cobra.Command, err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		switch {
		case exitErr.Err == nil:
		case exitErr.Code == exitConfig:
			fmt.Fprintf(root.ErrOrStderr(), "Configuration error: %v\n", exitErr.Err)
		default:
			fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", exitErr.Err)
		}
		return exitErr.Code
	}
	logging.Error(err)
	fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	return exitInvalid
}
