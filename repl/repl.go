/*
File    : ego/repl/repl.go
*/

// Package repl implements an interactive Read-Eval-Print Loop for ego,
// line-edited the same way the teacher's REPL is: readline for history
// and cursor movement, fatih/color for banner and result coloring.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/ego/builtin"
	"github.com/akashmaji946/ego/builtin/termgfx"
	"github.com/akashmaji946/ego/eval"
	"github.com/akashmaji946/ego/object"
	"github.com/akashmaji946/ego/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the banner/version/prompt text shown at startup. Unlike
// the core evaluator, it carries no program logic of its own — it just
// drives a parser+evaluator pair over one line at a time.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given display text.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBanner writes the startup banner and usage hint to writer.
func (r *Repl) PrintBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to ego!")
	cyanColor.Fprintf(writer, "%s\n", "Type a program fragment and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit.")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate history.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop, reading lines via readline and writing
// results/errors to writer. The global Environment and builtin registry
// persist for the whole session, so a `let` on one line is visible on
// the next — the same variable-at-a-time feel as the teacher's REPL.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	registry := builtin.NewRegistry()
	builtin.RegisterGeneric(registry)
	termgfx.Register(registry)
	evaluator := eval.New(registry)
	env := object.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.execute(writer, line, evaluator, env)
	}
}

// execute parses and evaluates one line, printing either the resulting
// value (yellow) or the error (red). Unlike file mode, execution never
// halts the process — a bad line just returns control to the prompt.
func (r *Repl) execute(writer io.Writer, line string, evaluator *eval.Evaluator, env *object.Environment) {
	program, err := parser.Parse(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	result, err := evaluator.Eval(program, env)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	if result != nil && result.Type() != object.UNIT {
		yellowColor.Fprintf(writer, "%s\n", result.Inspect())
	}
}
