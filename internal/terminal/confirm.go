package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(syscall.Stdin))
}

// Confirm prompts before a destructive action. Only an explicit 'y' or 'Y'
// proceeds; anything else cancels, including empty input, EOF, and
// non-interactive stdin.
func Confirm(prompt string) bool {
	if !IsTerminal() {
		return false
	}
	return confirmFrom(os.Stdin, os.Stdout, prompt)
}

func confirmFrom(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)

	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return false
	}

	input = strings.TrimSpace(input)
	return input == "y" || input == "Y"
}
