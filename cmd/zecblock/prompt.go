package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const promptText = "Enter block hash or height: "

// promptIdentifier asks for a block hash or height and returns the trimmed
// answer. A final line without a trailing newline is accepted.
func promptIdentifier(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, promptText)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading block identifier: %w", err)
	}
	return strings.TrimSpace(line), nil
}
