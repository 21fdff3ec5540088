package cli

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

const (
	exitInvalidContent = 3
	maxCheckFileSize   = 1 << 20
)

type checkOptions struct {
	expectError bool
	multi       bool
	prefix      string
	trace       bool
}

func (a *app) newCheckCommand() *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check [-e] [-m | -s <prefix>] <file>",
		Short: "Check that equation samples parse completely (or fail with -e)",
		Long: `Parses every sample of a file and prints sample name followed by the result.
Only comment lines may follow the last statement of a sample.

With -m the file contains multiple samples delimited by separators, the first line is the separator.
Each separator line starts with the same sequence of non-spacing characters,
the rest of the separator line is ignored and may be used as a comment.
With -s <prefix> the file is treated as multiple samples if it starts with the given prefix.

Exit codes:
  1: wrong arguments or file error
  2: a sample failed (or succeeded with -e)
  3: the file is not a valid UTF-8 encoded text`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.expectError, "expect-error", "e", false, "every sample must fail")
	flags.BoolVarP(&opts.multi, "multi", "m", false, "file contains multiple samples, the first line is the separator")
	flags.StringVarP(&opts.prefix, "separator", "s", "", "treat file as multiple samples if it starts with this string")
	flags.BoolVar(&opts.trace, "trace", false, "log parser decisions at debug level")
	cmd.MarkFlagsMutuallyExclusive("multi", "separator")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, opts *checkOptions, path string) error {
	content, e := loadFile(path)
	if e != nil {
		return &ExitError{Code: exitFailure, Err: e}
	}
	if !utf8.Valid(content) {
		return &ExitError{Code: exitInvalidContent, Err: fmt.Errorf("check %s: not a valid UTF-8 encoded text", path)}
	}

	cfg := a.config()
	cfg.Parser.RequireEOF = true
	fp, e := a.newFileParser(cmd, cfg, opts.trace)
	if e != nil {
		return &ExitError{Code: exitFailure, Err: e}
	}

	samples := splitSamples(path, string(content), opts.multi, opts.prefix)
	if len(samples) == 0 {
		return &ExitError{Code: exitFailure, Err: fmt.Errorf("check %s: no samples found", path)}
	}

	failed := 0
	stderr := cmd.ErrOrStderr()
	for _, src := range samples {
		fmt.Fprintln(fp.out, src.Name())
		ok, e := fp.parseSource(src)
		if e != nil {
			return &ExitError{Code: exitFailure, Err: e}
		}

		switch {
		case ok && opts.expectError:
			fmt.Fprintf(stderr, "  *** expecting error, got success in %s\n", src.Name())
			failed++
		case !ok && !opts.expectError:
			fmt.Fprintf(stderr, "  *** unexpected error in %s\n", src.Name())
			failed++
		}
	}

	fp.log.Info("check done", "file", path, "samples", len(samples), "failed", failed)
	if failed > 0 {
		return &ExitError{Code: exitParseFailure, Err: fmt.Errorf("%d of %d samples failed", failed, len(samples))}
	}
	return nil
}

func loadFile(name string) ([]byte, error) {
	stat, e := os.Stat(name)
	if e != nil {
		return nil, e
	}

	size := stat.Size()
	if size > maxCheckFileSize || size == 0 {
		return nil, fmt.Errorf("stat %s: invalid size (%d bytes)", name, size)
	}

	return os.ReadFile(name)
}
