// Package cli holds the terminal prompts used by the saasctl setup wizard.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoInput is returned when input ends before a required answer is given.
var ErrNoInput = errors.New("no more input")

type Prompter struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

func DefaultPrompter() *Prompter {
	return &Prompter{In: os.Stdin, Out: os.Stdout}
}

// next returns the next trimmed line. A final line without a newline still
// counts; io.EOF is only returned once nothing is left.
func (p *Prompter) next() (string, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.Out, format, args...)
}

// Ask returns the answer, or defaultVal when it is blank or input is over.
func (p *Prompter) Ask(question, defaultVal string) string {
	if defaultVal != "" {
		p.printf("%s [%s]: ", question, defaultVal)
	} else {
		p.printf("%s: ", question)
	}
	if answer, err := p.next(); err == nil && answer != "" {
		return answer
	}
	return defaultVal
}

// Choose asks until the answer matches one of choices (case-insensitive)
// and returns the matching choice as written.
func (p *Prompter) Choose(question string, choices ...string) (string, error) {
	for {
		p.printf("%s (%s): ", question, strings.Join(choices, "/"))
		answer, err := p.next()
		if err != nil {
			return "", ErrNoInput
		}
		for _, c := range choices {
			if strings.EqualFold(answer, c) {
				return c, nil
			}
		}
		p.printf("Please answer %s\n", strings.Join(choices, " or "))
	}
}

// AskSecret reads a key without echo on a terminal. Blank answers are
// accepted (the key is optional); a non-blank answer without prefix is
// asked again.
func (p *Prompter) AskSecret(question, prefix string) string {
	for {
		p.printf("%s: ", question)
		answer, ok := p.readSecret()
		if !ok || answer == "" {
			return ""
		}
		if strings.HasPrefix(answer, prefix) {
			return answer
		}
		p.printf("Expected a key starting with %q\n", prefix)
	}
}

func (p *Prompter) readSecret() (string, bool) {
	if f, ok := p.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		p.printf("\n")
		if err != nil {
			return "", false
		}
		return strings.TrimSpace(string(b)), true
	}

	answer, err := p.next()
	return answer, err == nil
}
