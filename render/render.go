// Package render writes parse results in debug, JSON, or YAML format.
//
// Debug format is a single line, either
//
//	Done "<unconsumed input>" Program([...])
//
// or
//
//	Error <kind>: <message> <- <cause kind>: <cause message>, rest "<unconsumed input at failure point>"
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/ava12/eqdef"
	"github.com/ava12/eqdef/ast"
)

// Format names output format.
type Format string

const (
	FormatDebug Format = "debug"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists known formats.
var Formats = []Format{FormatDebug, FormatJSON, FormatYAML}

// ParseFormat converts case-insensitive format name, empty name means FormatDebug.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatDebug, nil
	}

	f := Format(strings.ToLower(name))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown output format %q", name)
}

var (
	colorDone  = lipgloss.Color("#10B981")
	colorError = lipgloss.Color("#EF4444")
	colorRest  = lipgloss.Color("#94A3B8")
)

// Options configure Renderer.
type Options struct {
	Format Format
	// Color enables styled headers in debug format.
	Color bool
}

// Renderer writes parse results.
type Renderer struct {
	format Format
	color  bool
}

// New creates Renderer, empty format means FormatDebug.
func New(opts Options) (*Renderer, error) {
	f, e := ParseFormat(string(opts.Format))
	if e != nil {
		return nil, e
	}
	return &Renderer{format: f, color: opts.Color}, nil
}

// Render writes result of parsing named source to w, parseErr is the error returned by parser.
func (r *Renderer) Render(w io.Writer, name string, prog *ast.Program, rest string, parseErr error) error {
	var e error
	switch r.format {
	case FormatJSON:
		var data []byte
		data, e = json.MarshalIndent(NewResult(name, prog, rest, parseErr), "", "  ")
		if e == nil {
			_, e = w.Write(append(data, '\n'))
		}

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		e = enc.Encode(NewResult(name, prog, rest, parseErr))
		if e == nil {
			e = enc.Close()
		}

	default:
		_, e = io.WriteString(w, r.debugLine(w, prog, rest, parseErr)+"\n")
	}

	return e
}

func (r *Renderer) debugLine(w io.Writer, prog *ast.Program, rest string, e error) string {
	doneHeader, errorHeader, restText := "Done", "Error", fmt.Sprintf("%q", rest)
	if r.color {
		lr := lipgloss.NewRenderer(w)
		doneHeader = lr.NewStyle().Foreground(colorDone).Bold(true).Render(doneHeader)
		errorHeader = lr.NewStyle().Foreground(colorError).Bold(true).Render(errorHeader)
		restText = lr.NewStyle().Foreground(colorRest).Render(restText)
	}

	if e != nil {
		return errorHeader + " " + describeError(e)
	}
	return doneHeader + " " + restText + " " + ast.Dump(prog)
}

// describeError lists kinds and messages of the error chain followed by unconsumed input
// at the innermost failure point.
func describeError(e error) string {
	var (
		parts   []string
		rest    string
		hasRest bool
	)
	for e != nil {
		var ee *eqdef.Error
		if !errors.As(e, &ee) {
			parts = append(parts, e.Error())
			break
		}

		parts = append(parts, ee.Kind()+": "+ee.Message)
		if ee.Line > 0 {
			rest, hasRest = ee.Remainder, true
		}
		e = ee.Cause
	}

	res := strings.Join(parts, " <- ")
	if hasRest {
		res += fmt.Sprintf(", rest %q", rest)
	}
	return res
}

// Debug returns debug representation of a parse result without styling.
func Debug(prog *ast.Program, rest string, e error) string {
	r := &Renderer{format: FormatDebug}
	return r.debugLine(io.Discard, prog, rest, e)
}
