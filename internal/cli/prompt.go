package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// isTerminal returns true if stdin is a terminal (not piped/redirected).
func isTerminal() bool {
	return term.IsTerminal(int(syscall.Stdin))
}

// readNumberSecure reads a number from stdin without echo.
// The code is treated as a secret at the terminal so it does not linger on
// screen. Falls back to a buffered read if stdin is not a terminal.
func readNumberSecure(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if !isTerminal() {
		// stdin is piped; read normally
		return readLine()
	}

	// Terminal mode: disable echo
	number, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return "", fmt.Errorf("reading number: %w", err)
	}
	return string(number), nil
}

// ReadNumberInteractive prompts for the 6-digit number interactively.
func ReadNumberInteractive(prompt string) (string, error) {
	return readNumberSecure(prompt)
}

// ReadNumberFromStdin reads the number from stdin (for piped input with -N flag).
func ReadNumberFromStdin() (string, error) {
	return readLine()
}

func readLine() (string, error) {
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading number from stdin: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
