// Package cli implements eqdef console commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ava12/eqdef/internal/config"
)

// ExitError carries process exit code, Err is reported to stderr if not nil.
type ExitError struct {
	Code int
	Err  error
}

func (ee *ExitError) Error() string {
	if ee.Err == nil {
		return fmt.Sprintf("exit code %d", ee.Code)
	}
	return ee.Err.Error()
}

func (ee *ExitError) Unwrap() error {
	return ee.Err
}

type app struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
}

// NewRootCommand creates eqdef command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "eqdef",
		Short: "Grammar equation parser",
		Long: `eqdef parses grammar equation descriptions like

  // comment
  URI = [scheme host path*].
  Flag = (on | [off now]).

and prints resulting syntax trees.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, e := config.Load(a.cfgFile)
			if e != nil {
				return e
			}
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file, .toml or .yaml (default: $"+config.EnvVar+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")
	root.AddCommand(a.newParseCommand(), a.newCheckCommand(), newVersionCommand())
	return root
}

// Execute runs command line and returns process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	e := root.ExecuteContext(ctx)
	if e == nil {
		return 0
	}

	var ee *ExitError
	if errors.As(e, &ee) {
		if ee.Err != nil {
			fmt.Fprintln(stderr, "Error:", ee.Err)
		}
		return ee.Code
	}

	fmt.Fprintln(stderr, "Error:", e)
	return 1
}
