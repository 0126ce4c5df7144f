// Command rulox is the CLI driver: a REPL when invoked with no arguments,
// a file runner when given exactly one. This is an external collaborator
// over the core package's API (rulox.New/.Tokenize/.Parse/.Run), not part
// of the interpreter itself (SPEC_FULL.md's scope boundary).
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"rulox"
)

var (
	errColor  = color.New(color.FgRed)
	outColor  = color.New(color.FgGreen)
	infoColor = color.New(color.FgCyan)
)

func main() {
	switch len(os.Args) {
	case 1:
		runREPL()
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "Usage: rulox [script]")
		os.Exit(64)
	}
}

func runFile(path string) {
	contents, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	lox := rulox.New(string(contents))
	for _, line := range lox.Run() {
		fmt.Println(line)
	}
	if lox.HadErrors {
		os.Exit(65)
	}
}

// runREPL implements the interactive loop: prompt "> ", read one line,
// execute it, repeat. "exit" or "quit" terminates with code 0.
// Line editing/history come from chzyer/readline; diagnostics and output
// are colorized with fatih/color, the same way akashmaji946-go-mix's REPL
// colors its banner and error channel.
func runREPL() {
	infoColor.Println("rulox — a tree-walking Lox interpreter")
	infoColor.Println("Type 'exit' or 'quit' to leave.")

	rl, err := readline.New("> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting REPL: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			return
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "exit" || trimmed == "quit" {
			return
		}
		if trimmed == "" {
			continue
		}

		lox := rulox.New(line)
		for _, out := range lox.Run() {
			if lox.HadErrors {
				errColor.Println(out)
			} else {
				outColor.Println(out)
			}
		}
	}
}
