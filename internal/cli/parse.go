package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ava12/eqdef"
	"github.com/ava12/eqdef/ast"
	"github.com/ava12/eqdef/internal/config"
	"github.com/ava12/eqdef/parser"
	"github.com/ava12/eqdef/render"
	"github.com/ava12/eqdef/source"
)

const (
	exitFailure      = 1
	exitParseFailure = 2
)

type parseOptions struct {
	file       string
	format     string
	color      bool
	strict     bool
	requireEOF bool
	maxDepth   int
	trace      bool
	watch      bool
}

func (a *app) newParseCommand() *cobra.Command {
	opts := &parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [-f file | file]",
		Short: "Parse equation file and print the result",
		Long: `Parses equation file and prints either
  Done "<unconsumed input>" <syntax tree>
or
  Error <error kind>: <message> <- <cause>..., rest "<unconsumed input>"

Parse failure is not an exit failure unless --strict is given (exit code 2).
Missing or unreadable file is reported to stdout with exit code 1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.file == "" && len(args) > 0 {
				opts.file = args[0]
			}
			return a.runParse(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "the file to parse")
	flags.StringVar(&opts.format, "format", "", "output format: debug, json, or yaml")
	flags.BoolVar(&opts.color, "color", false, "colorize debug output")
	flags.BoolVar(&opts.strict, "strict", false, "exit with code 2 if parsing fails")
	flags.BoolVar(&opts.requireEOF, "require-eof", false, "treat unconsumed input as a failure")
	flags.IntVar(&opts.maxDepth, "max-depth", parser.DefaultMaxDepth, "maximal nesting of alternatives")
	flags.BoolVar(&opts.trace, "trace", false, "log parser decisions at debug level")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "re-parse the file on every change until interrupted")
	return cmd
}

// apply overrides config values with explicitly given flags.
func (opts *parseOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("color") {
		cfg.Output.Color = opts.color
	}
	if flags.Changed("require-eof") {
		cfg.Parser.RequireEOF = opts.requireEOF
	}
	if flags.Changed("max-depth") {
		cfg.Parser.MaxDepth = opts.maxDepth
	}
	return cfg.Validate()
}

// fileParser parses a single file and renders the result.
type fileParser struct {
	parser     *parser.Parser
	renderer   *render.Renderer
	requireEOF bool
	log        *slog.Logger
	out        io.Writer
}

func (a *app) runParse(cmd *cobra.Command, opts *parseOptions) error {
	if opts.file == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Invalid/no file path")
		return &ExitError{Code: exitFailure}
	}

	cfg := a.config()
	if e := opts.apply(cmd, cfg); e != nil {
		return &ExitError{Code: exitFailure, Err: e}
	}

	fp, e := a.newFileParser(cmd, cfg, opts.trace)
	if e != nil {
		return &ExitError{Code: exitFailure, Err: e}
	}

	ok, e := fp.parseFile(opts.file)
	if e != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Error:", e)
		return &ExitError{Code: exitFailure}
	}

	if opts.watch {
		if e := fp.watch(cmd.Context(), opts.file); e != nil {
			return &ExitError{Code: exitFailure, Err: e}
		}
		return nil
	}

	if !ok && opts.strict {
		return &ExitError{Code: exitParseFailure}
	}
	return nil
}

func (a *app) config() *config.Config {
	if a.cfg == nil {
		a.cfg = config.Default()
	}
	return a.cfg
}

func (a *app) newFileParser(cmd *cobra.Command, cfg *config.Config, trace bool) (*fileParser, error) {
	log, e := a.newLogger(cmd.ErrOrStderr(), cfg.Log, trace)
	if e != nil {
		return nil, e
	}

	r, e := render.New(render.Options{Format: render.Format(cfg.Output.Format), Color: cfg.Output.Color})
	if e != nil {
		return nil, e
	}

	popts := parser.Options{MaxDepth: cfg.Parser.MaxDepth}
	if trace {
		popts.Logger = log
	}

	p := parser.New(popts)
	log.Debug("parser ready", "max_depth", p.MaxDepth(), "require_eof", cfg.Parser.RequireEOF, "format", cfg.Output.Format)
	return &fileParser{
		parser:     p,
		renderer:   r,
		requireEOF: cfg.Parser.RequireEOF,
		log:        log,
		out:        cmd.OutOrStdout(),
	}, nil
}

func (a *app) newLogger(w io.Writer, lc config.LogConfig, trace bool) (*slog.Logger, error) {
	level, e := lc.SlogLevel()
	if e != nil {
		return nil, e
	}
	if trace {
		lc.Level = slog.LevelDebug.String()
	} else if a.verbose && level > slog.LevelInfo {
		lc.Level = slog.LevelInfo.String()
	}

	log, e := lc.NewLogger(w)
	if e != nil {
		return nil, e
	}
	return log.With("run", uuid.NewString()), nil
}

// parseFile reads, parses, and renders a file. Returns false if parsing failed.
// Returned error means the file could not be read or the result could not be written.
func (fp *fileParser) parseFile(path string) (bool, error) {
	content, e := os.ReadFile(path)
	if e != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, e)
	}

	return fp.parseSource(source.NewBytes(path, content))
}

func (fp *fileParser) parseSource(src *source.Source) (bool, error) {
	prog, rest, pe := fp.parser.Parse(src)
	if pe == nil && fp.requireEOF {
		pe = fp.checkEOF(rest)
	}

	if pe != nil {
		prog = nil
		fp.log.Warn("parsing failed", "source", src.Name(), "error", pe.Error())
	} else {
		fp.log.Info("parsing done", "source", src.Name(), "statements", len(prog.Statements),
			"terminals", len(ast.Terminals(prog)), "depth", ast.Depth(prog), "rest", len(rest.Rest()))
	}

	if e := fp.renderer.Render(fp.out, src.Name(), prog, rest.Rest(), pe); e != nil {
		return false, e
	}
	return pe == nil, nil
}

// checkEOF allows only comment lines after the last statement.
func (fp *fileParser) checkEOF(c source.Cursor) error {
	var (
		e  error
		cm ast.Comment
	)
	for !c.IsEof() && e == nil {
		cm, c, e = fp.parser.ParseComment(c)
		if e == nil {
			fp.log.Debug("skipped trailing comment", "line", cm.Pos().Line())
		}
	}

	if c.IsEof() {
		return nil
	}
	return eqdef.FormatErrorPos(c, eqdef.MalformedStatementError, "unexpected input after the last statement")
}
