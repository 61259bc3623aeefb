package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/homes"
)

// Prompt texts of the interactive session.
const (
	urlPrompt      = "Enter CalgaryHomes URL to parse: "
	continuePrompt = "\nContinue? (y/n): "
	formatPrompt   = `
Output format options:
[1] csv
[2] xlsx (excel)
[3] json
[4] cli (command line)
Enter number for output choice: `
)

// Formats lists the output formats in menu order.
var Formats = []string{"csv", "xlsx", "json", "cli"}

// errInputClosed is returned when stdin ends before a prompt is answered.
var errInputClosed = homes.Errorf(homes.EINVALID, "input closed")

// prompter asks questions on out and reads answers line by line from in.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// listingURL asks until it gets a valid listing URL.
func (p *prompter) listingURL() (string, error) {
	for {
		answer, err := p.ask(urlPrompt)
		if err != nil {
			return "", err
		}
		if homes.ValidateListingURL(answer) == nil {
			return answer, nil
		}
		fmt.Fprintln(p.out, "Invalid input, please enter a valid CalgaryHomes URL!")
	}
}

// confirm asks until it gets y or n.
func (p *prompter) confirm() (bool, error) {
	for {
		answer, err := p.ask(continuePrompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(p.out, "Invalid input, please enter y or n")
	}
}

// format asks until it gets a menu number and returns the chosen format.
func (p *prompter) format() (string, error) {
	for {
		answer, err := p.ask(formatPrompt)
		if err != nil {
			return "", err
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(Formats) {
			return Formats[n-1], nil
		}
		fmt.Fprintf(p.out, "\nInvalid input, please enter a number from 1-%d\n", len(Formats))
	}
}
