package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptLine asks for a single line of input. An empty answer falls back to
// the default value, which is shown in the prompt when present.
func promptLine(reader *bufio.Reader, label, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Printf("%s [%s]: ", label, defaultValue)
	} else {
		fmt.Printf("%s: ", label)
	}

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue, nil
	}

	return line, nil
}

// promptPassword asks for a password without echoing it. When stdin is not a
// terminal (tests, pipes) it falls back to a plain line read.
func promptPassword(reader *bufio.Reader, label string) (string, error) {
	fmt.Printf("%s: ", label)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return strings.TrimSpace(line), nil
	}

	secret, err := term.ReadPassword(fd)

	fmt.Println()

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return strings.TrimSpace(string(secret)), nil
}

// promptBool asks a yes/no question.
func promptBool(reader *bufio.Reader, label string, defaultValue bool) (bool, error) {
	hint := "y/N"
	if defaultValue {
		hint = "Y/n"
	}

	answer, err := promptLine(reader, fmt.Sprintf("%s (%s)", label, hint), "")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "":
		return defaultValue, nil
	case "y", "yes", "true":
		return true, nil
	default:
		return false, nil
	}
}
