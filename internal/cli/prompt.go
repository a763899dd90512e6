package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// PromptText prints a label and reads a single line of input. An empty
// entry or a closed input stream counts as the user cancelling the
// prompt.
func PromptText(out io.Writer, in io.Reader, label string) (string, error) {
	fmt.Fprintf(out, "%s: ", label)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %s", err)
	}
	value := strings.TrimSpace(line)
	if value == "" {
		return "", ErrorUserCancelled
	}
	return value, nil
}
