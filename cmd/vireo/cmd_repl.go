/******************************************************************************\
* The Vireo Language                                                           *
*                                                                              *
* Copyright 2023-2026 The Vireo Language Authors                               *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vireo-lang/vireo/pkg/run"
	"github.com/vireo-lang/vireo/pkg/vutil"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Starts an interactive Vireo session",
	Long: `Starts an interactive Vireo session. Define forms accumulate into
the session program; any other input is compiled as the body of a throwaway
entry point and run right away.`,
	Args: cobra.NoArgs,

	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

// runRepl runs the read-eval-print loop until EOF or an exit command.
func runRepl() {
	fmt.Println("Vireo interactive session. Type `exit` to leave.")

	defines := []string{}
	scanner := bufio.NewScanner(os.Stdin)
	buffer := ""

	for {
		if buffer == "" {
			fmt.Print("vireo> ")
		} else {
			fmt.Print("   ... ")
		}

		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()

		if buffer == "" {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if trimmed == "exit" || trimmed == "quit" {
				fmt.Println("Bye!")
				return
			}
		}

		// Accumulate until the parens balance, so multiline forms work.
		buffer += line + "\n"
		if parenBalance(buffer) > 0 {
			continue
		}

		input := strings.TrimSpace(buffer)
		buffer = ""
		evalInput(&defines, input)
	}
}

// evalInput processes one complete REPL input.
func evalInput(defines *[]string, input string) {
	if strings.HasPrefix(input, "(define") {
		// Tentatively add the definition; drop it again if the program stops
		// compiling.
		candidate := append(append([]string{}, *defines...), input)
		if err := checkDefines(candidate); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return
		}
		*defines = candidate
		return
	}

	program := strings.Join(*defines, "\n") + "\n(define (main) " + input + ")"
	mouth := vutil.NewWriterMouth(os.Stdout)
	value, err := run.RunSource("repl", program, mouth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return
	}
	fmt.Printf("=> %v\n", value)
}

// checkDefines compiles the accumulated definitions (with an empty entry
// point) to catch errors at definition time.
func checkDefines(defines []string) error {
	program := strings.Join(defines, "\n") + "\n(define (main) 0)"
	_, err := run.RunSource("repl", program, &vutil.MemoryMouth{})
	if err != nil {
		return err
	}
	return nil
}

// parenBalance returns how many parens are currently open in source,
// ignoring those inside strings and comments.
func parenBalance(source string) int {
	balance := 0
	inString := false
	inComment := false
	escaped := false

	for _, r := range source {
		switch {
		case inComment:
			if r == '\n' {
				inComment = false
			}
		case inString:
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
		case r == '"':
			inString = true
		case r == ';':
			inComment = true
		case r == '(':
			balance++
		case r == ')':
			balance--
		}
	}
	return balance
}
