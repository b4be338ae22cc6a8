// Package confirmations provides console yes/no prompts.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm writes "msg [y/N]: " to out and reads one line from in. Only "y" and
// "yes" (any case) confirm; an empty line or end of input declines.
func Confirm(in io.Reader, out io.Writer, msg string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N]: ", msg); err != nil {
		return false, err
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
