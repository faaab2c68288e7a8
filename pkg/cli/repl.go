package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/zinclang/zinc/internal/config"
	"github.com/zinclang/zinc/internal/evaluator"
	"github.com/zinclang/zinc/internal/lexer"
	"github.com/zinclang/zinc/internal/parser"
)

// runREPL reads forms from the terminal and prints each form's value. The
// evaluator, and with it the user-function table, persists for the whole
// session; a failed form reports its error and the session continues.
func runREPL(stdout, stderr io.Writer) int {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Fprintf(stdout, "%s %s (Ctrl-D to exit)\n", config.LanguageName, config.Version)

	e := evaluator.New()
	e.Out = stdout

	prompt := config.LanguageName + "> "
	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			// io.EOF on Ctrl-D
			fmt.Fprintln(stdout)
			return 0
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		program, err := parser.New(lexer.New(input)).ParseProgram()
		if err != nil {
			reportError(stderr, err)
			continue
		}
		for _, form := range program.Children {
			val, err := e.Interpret(form)
			if err != nil {
				reportError(stderr, err)
				break
			}
			fmt.Fprintln(stdout, val.String())
		}
	}
}
