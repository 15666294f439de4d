// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrCancelled indicates the user ended input (e.g. Ctrl+D) instead of
// answering.
var ErrCancelled = errors.New("prompt cancelled")

// Confirmer handles interactive yes/no prompts.
type Confirmer struct {
	reader io.Reader
	writer io.Writer
}

// NewConfirmer creates a Confirmer using stdin and stdout.
func NewConfirmer() *Confirmer {
	return &Confirmer{
		reader: os.Stdin,
		writer: os.Stdout,
	}
}

// NewConfirmerWithIO creates a Confirmer with custom reader and writer for testing.
func NewConfirmerWithIO(r io.Reader, w io.Writer) *Confirmer {
	return &Confirmer{
		reader: r,
		writer: w,
	}
}

// Confirm asks question and reads a yes/no answer.
//
// Returns:
//   - defaultYes on an empty answer
//   - true for "y"/"yes", false for "n"/"no" (case-insensitive)
//   - ErrCancelled if input is EOF (e.g., Ctrl+D)
//
// Any other answer re-prompts until one of the above applies.
func (c *Confirmer) Confirm(question string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	reader := bufio.NewReader(c.reader)
	for {
		fmt.Fprintf(c.writer, "%s %s: ", question, hint)

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, ErrCancelled
			}
			return false, errors.Wrap(err, "reading answer")
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}
