// Package console reads validated answers from a line-oriented input stream.
//
// Every prompt blocks until acceptable input arrives. Invalid answers print an
// error and ask again; there is no retry limit. Only a failing or closed input
// stream ends a prompt early.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/pokerpal/internal/chips"
	"github.com/lox/pokerpal/internal/display"
)

// ErrClosed is returned when the input stream ends before a valid answer
var ErrClosed = errors.New("input closed")

// Prompter asks questions on a display.Printer and reads answers from in
type Prompter struct {
	in  *bufio.Reader
	out *display.Printer
}

// NewPrompter creates a prompter reading from in
func NewPrompter(in io.Reader, out *display.Printer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Choice reads a whole number in [lo, hi]
func (p *Prompter) Choice(lo, hi int) (int, error) {
	for {
		field, err := p.next()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(field)
		if err == nil && n >= lo && n <= hi {
			return n, nil
		}
		p.out.Retry("Please enter a valid menu option:")
	}
}

// Count prints prompt and reads a number of chips between 0 and chips.MaxCount
func (p *Prompter) Count(prompt string) (int, error) {
	p.out.Prompt(prompt)
	for {
		field, err := p.next()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(field)
		if err == nil && chips.ValidCount(n) {
			return n, nil
		}
		p.out.Retry("Invalid amount! Enter a valid number of chips:")
	}
}

// Amount prints prompt and reads a non-negative money amount
func (p *Prompter) Amount(prompt string) (chips.Cents, error) {
	p.out.Prompt(prompt)
	for {
		field, err := p.next()
		if err != nil {
			return 0, err
		}
		amount, err := chips.ParseAmount(field)
		if err == nil {
			return amount, nil
		}
		p.out.Retry("Please enter a valid pot amount:")
	}
}

// Word prints prompt and reads a single word without validating it
func (p *Prompter) Word(prompt string) (string, error) {
	p.out.Prompt(prompt)
	return p.next()
}

// Name prints prompt and reads words until accept returns nil, printing
// retry after each rejected word.
func (p *Prompter) Name(prompt, retry string, accept func(string) error) (string, error) {
	p.out.Prompt(prompt)
	for {
		name, err := p.next()
		if err != nil {
			return "", err
		}
		if accept(name) == nil {
			return name, nil
		}
		p.out.Retry(retry)
	}
}

// next returns the first field of the next non-blank line
func (p *Prompter) next() (string, error) {
	for {
		line, err := p.in.ReadString('\n')
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0], nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrClosed
		}
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}
}
