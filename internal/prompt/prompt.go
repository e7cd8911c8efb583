package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ErrCancelled signals that the user aborted the question sequence, either
// by declining the overwrite confirmation or by closing stdin mid-prompt.
// The caller prints a single cancellation line and exits cleanly.
var ErrCancelled = errors.New("operation cancelled")

// Prompter asks line-oriented questions on an injected reader/writer pair.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter reading answers from in and printing questions to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Text asks for a free-form answer. An empty submission returns def.
func (p *Prompter) Text(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s (%s) ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s ", label)
	}

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question. An empty submission returns def;
// unrecognized input re-prompts.
func (p *Prompter) Confirm(label string, def bool) (bool, error) {
	hint := "[Y/n]"
	if !def {
		hint = "[y/N]"
	}

	for {
		fmt.Fprintf(p.out, "%s %s ", label, hint)

		answer, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer yes or no.")
	}
}

// Select presents a numbered menu and returns the chosen index.
// Out-of-range or non-numeric input re-prompts.
func (p *Prompter) Select(label string, items []string) (int, error) {
	fmt.Fprintf(p.out, "%s\n", label)
	for i, item := range items {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, item)
	}

	for {
		fmt.Fprintf(p.out, "Enter number [1-%d]: ", len(items))

		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}

		num, err := strconv.Atoi(answer)
		if err == nil && num >= 1 && num <= len(items) {
			return num - 1, nil
		}
		fmt.Fprintf(p.out, "Invalid selection %q: choose 1-%d.\n", answer, len(items))
	}
}

// readLine reads one trimmed answer line. Exhausted input means the user
// aborted (e.g. Ctrl-D), which surfaces as ErrCancelled.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", ErrCancelled
	}
	return strings.TrimSpace(line), nil
}
