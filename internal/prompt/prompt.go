// Package prompt provides blocking line-based terminal prompts.
//
// All prompts read a full line and trim surrounding whitespace. The reader
// and writer are injectable so prompt flows can be tested with scripted
// input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/stencil-kit/stencil/internal/errors"
)

// Prompter asks questions on a terminal and reads line-based answers.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// New creates a Prompter bound to stdin/stdout.
func New() *Prompter {
	return NewWith(os.Stdin, os.Stdout)
}

// NewWith creates a Prompter with a custom reader and writer.
func NewWith(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// readLine reads one line of input, trimming surrounding whitespace.
func (p *Prompter) readLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil && line == "" {
		return "", errors.New("E130").Wrap(err)
	}
	return strings.TrimSpace(line), nil
}

// Ask prints the label and returns the trimmed answer.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprintf(p.w, "? %s: ", label)
	return p.readLine()
}

// AskDefault prints the label with a default value. An empty answer
// returns the default.
func (p *Prompter) AskDefault(label, def string) (string, error) {
	fmt.Fprintf(p.w, "? %s [%s]: ", label, def)
	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question. An empty answer returns defaultYes.
func (p *Prompter) Confirm(label string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Fprintf(p.w, "? %s %s: ", label, hint)

	answer, err := p.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return defaultYes, nil
	}
}

// Select prints a numbered menu once, then loops prompting for a 1-based
// choice until a valid index is entered. Invalid input reprints only the
// prompt line, not the whole menu.
func (p *Prompter) Select(label string, options []string) (int, error) {
	fmt.Fprintln(p.w)
	for i, opt := range options {
		fmt.Fprintf(p.w, "  %d. %s\n", i+1, opt)
	}
	fmt.Fprintln(p.w)

	for {
		fmt.Fprintf(p.w, "? %s (1-%d): ", label, len(options))
		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintf(p.w, "  Please enter a number between 1 and %d.\n", len(options))
			continue
		}
		return n - 1, nil
	}
}
