/*
File    : ego/cmd/ego/main.go
*/

// Command ego is the CLI front-end spec.md §6 names as the core's
// external collaborator: invoked with no argument it prints a usage line
// and exits 0; given a file path it drives the lexer/parser/eval pipeline
// over that file and reports success or failure via exit status. The
// interactive REPL sits behind an explicit `--repl` flag, since spec.md
// §6 reserves no-arg invocation for the usage line.
package main

import (
	"os"

	"github.com/akashmaji946/ego/builtin"
	"github.com/akashmaji946/ego/builtin/termgfx"
	"github.com/akashmaji946/ego/eval"
	"github.com/akashmaji946/ego/object"
	"github.com/akashmaji946/ego/parser"
	"github.com/akashmaji946/ego/repl"
	"github.com/fatih/color"
)

// VERSION is the current release of the ego interpreter.
var VERSION = "v0.1.0"

// AUTHOR is the interpreter's maintainer contact.
var AUTHOR = "ego maintainers"

// LICENSE is the project's software license.
var LICENSE = "MIT"

// PROMPT is shown at the start of every REPL input line.
var PROMPT = "ego >>> "

// LINE separates banner sections in REPL and help output.
var LINE = "----------------------------------------------------------------"

// BANNER is the ASCII logo shown at REPL startup.
var BANNER = `
  ███████╗ ██████╗  ██████╗
  ██╔════╝██╔════╝ ██╔═══██╗
  █████╗  ██║  ███╗██║   ██║
  ██╔══╝  ██║   ██║██║   ██║
  ███████╗╚██████╔╝╚██████╔╝
  ╚══════╝ ╚═════╝  ╚═════╝
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) <= 1 {
		showUsage()
		os.Exit(0)
	}

	switch os.Args[1] {
	case "--help", "-h":
		showHelp()
		os.Exit(0)
	case "--version", "-v":
		showVersion()
		os.Exit(0)
	case "--repl", "-i":
		r := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		r.Start(os.Stdout)
		return
	}

	runFile(os.Args[1])
}

// showUsage prints the single usage line spec.md §6 mandates for a
// no-argument invocation.
func showUsage() {
	cyanColor.Println("usage: ego [--repl | --help | --version | <path-to-file>]")
}

func showHelp() {
	cyanColor.Println("ego - a small tree-walking scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  ego                  Print usage and exit")
	yellowColor.Println("  ego <path-to-file>   Execute an ego source file")
	yellowColor.Println("  ego --repl           Start interactive REPL mode")
	yellowColor.Println("  ego --help           Display this help message")
	yellowColor.Println("  ego --version        Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL:")
	yellowColor.Println("  .exit                Exit the REPL")
}

func showVersion() {
	cyanColor.Println("ego - a small tree-walking scripting language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
}

// runFile reads fileName, runs it to completion, and exits non-zero on
// any parse or eval failure (spec.md §6/§7: diagnostics to stderr,
// partial side effects are not rolled back).
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	program, err := parser.Parse(string(source))
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	registry := builtin.NewRegistry()
	builtin.RegisterGeneric(registry)
	termgfx.Register(registry)

	evaluator := eval.New(registry)
	env := object.New()

	if _, err := evaluator.Eval(program, env); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
