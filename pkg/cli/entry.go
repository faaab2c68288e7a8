// Package cli is the reusable entry point behind the zinc binary. It runs
// source files, executes piped input, and hosts the interactive REPL.
// Embedders call Run with their own streams; the interpreter itself never
// exits the process.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/zinclang/zinc/internal/config"
	"github.com/zinclang/zinc/internal/evaluator"
	"github.com/zinclang/zinc/internal/lexer"
	"github.com/zinclang/zinc/internal/parser"
)

// Run executes the command line and returns the process exit code.
// With a file argument the file is run as a program. With no argument,
// piped stdin is read fully and run as a program, and a terminal gets the
// REPL.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(config.LanguageName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", config.LanguageName, config.Version)
		return 0
	}

	switch fs.NArg() {
	case 0:
		if isTerminal(stdin) {
			return runREPL(stdout, stderr)
		}
		src, err := io.ReadAll(stdin)
		if err != nil {
			reportError(stderr, err)
			return 1
		}
		return runSource(string(src), stdout, stderr)
	case 1:
		return runFile(fs.Arg(0), stdout, stderr)
	default:
		fmt.Fprintf(stderr, "USAGE: %s [FILE]\n", config.LanguageName)
		return 2
	}
}

func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func runFile(path string, stdout, stderr io.Writer) int {
	if !isSourceFile(path) {
		reportError(stderr, fmt.Errorf("'%s' is not a %s source file (expected %s)", path, config.LanguageName, config.SourceFileExt))
		return 1
	}
	src, err := os.ReadFile(path)
	if err != nil {
		reportError(stderr, fmt.Errorf("unable to open '%s'", path))
		return 1
	}
	return runSource(string(src), stdout, stderr)
}

func runSource(src string, stdout, stderr io.Writer) int {
	program, err := parser.New(lexer.New(src)).ParseProgram()
	if err != nil {
		reportError(stderr, err)
		return 1
	}

	e := evaluator.New()
	e.Out = stdout
	if _, err := e.Interpret(program); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

// reportError writes a diagnostic in the interpreter's error format,
// colorized when the destination is a terminal.
func reportError(w io.Writer, err error) {
	prefix := config.LanguageName + ": error:"
	if isTerminal(w) {
		fmt.Fprintf(w, "\x1b[31m%s\x1b[0m %s\n", prefix, err)
		return
	}
	fmt.Fprintf(w, "%s %s\n", prefix, err)
}

func isTerminal(stream interface{}) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
