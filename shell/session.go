// Package shell implements the pantry command interpreter.
//
// A line is parsed into an Input, dispatched through a Registry to the Handler
// of its Keyword, and the Handler mutates or queries the inventory. Errors are
// reported and the session goes on with the next line: only EXIT, or the end of
// the input, ends a session.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/etnz/pantry"
	"github.com/etnz/pantry/date"
	"github.com/etnz/pantry/docs"
	"github.com/etnz/pantry/renderer"
)

// CommandPrompt is printed when waiting for a command.
const CommandPrompt = "> "

// Config holds the session settings.
type Config struct {
	// Currency of new prices, pantry.DefaultCurrency when empty.
	Currency string
	// Style is the renderer style, renderer.StylePlain when empty.
	Style string
	// Today returns the current date, date.Today when nil.
	Today func() date.Date
}

// Session is one run of the interpreter over an inventory.
type Session struct {
	Inventory *pantry.Inventory
	Prompt    *Prompter

	out      io.Writer
	log      *log.Logger
	registry Registry
	currency string
	style    string
	today    func() date.Date
	running  bool
}

// New creates a session reading commands from 'in' and writing to 'out'.
//
// 'logger' receives diagnostics that are not part of the normal output, it may be nil.
func New(inv *pantry.Inventory, in io.Reader, out io.Writer, logger *log.Logger, cfg Config) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.Currency == "" {
		cfg.Currency = pantry.DefaultCurrency
	}
	if cfg.Style == "" {
		cfg.Style = renderer.StylePlain
	}
	if cfg.Today == nil {
		cfg.Today = date.Today
	}
	return &Session{
		Inventory: inv,
		Prompt:    NewPrompter(in, out),
		out:       out,
		log:       logger,
		registry:  NewRegistry(),
		currency:  cfg.Currency,
		style:     cfg.Style,
		today:     cfg.Today,
	}
}

// Run reads and executes commands until EXIT, the end of the input, or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	s.running = true
	for s.running {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := s.Prompt.ReadLine(CommandPrompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if errors.Is(err, ErrLineTooLong) {
			s.Printf("Error: %v.", err)
			continue
		}
		if err != nil {
			return err
		}
		if err := s.Execute(line); errors.Is(err, io.EOF) {
			return nil
		}
	}
	return nil
}

// Execute parses and dispatches one line, and reports any error.
//
// The error is returned only to let callers know how the line ended, it has
// already been reported.
func (s *Session) Execute(line string) error {
	in, err := Parse(line)
	if errors.Is(err, ErrBlankInput) {
		fmt.Fprintln(s.out, "Please enter a command, or HELP.")
		return err
	}
	err = s.Dispatch(in)
	if err != nil && !errors.Is(err, io.EOF) {
		s.report(in, err)
	}
	return err
}

// Dispatch runs the handler of the input keyword.
func (s *Session) Dispatch(in Input) error {
	return s.registry.Of(in.Keyword).Execute(s, in)
}

// Running reports whether the session accepts more commands.
func (s *Session) Running() bool { return s.running }

// Stop ends the session after the current command.
func (s *Session) Stop() { s.running = false }

// Today returns the date used for expiry.
func (s *Session) Today() date.Date { return s.today() }

// Currency returns the currency of new prices.
func (s *Session) Currency() string { return s.currency }

// Print renders markdown to the output.
func (s *Session) Print(md string) {
	out := renderer.Markdown(md, s.style)
	fmt.Fprint(s.out, out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(s.out)
	}
}

// Printf prints a plain message line.
func (s *Session) Printf(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// Help prints the help topic of a command.
func (s *Session) Help(k Keyword) error {
	return s.Topic(k.Topic())
}

// Topic prints a help topic.
func (s *Session) Topic(topic string) error {
	doc, err := docs.GetTopic(topic)
	if err != nil {
		return err
	}
	s.Print(doc)
	return nil
}

func (s *Session) report(in Input, err error) {
	var illegal *IllegalCommandError
	switch {
	case errors.As(err, &illegal):
		s.Printf("Error: %v.", err)
		if herr := s.Help(illegal.Keyword); herr != nil {
			s.log.Printf("no help for %s: %v", illegal.Keyword, herr)
		}
	case errors.Is(err, ErrAborted):
		s.Printf("Aborted, nothing changed.")
	case errors.Is(err, pantry.ErrConversion):
		// Merges check kinds first, reaching this is a bug.
		s.log.Printf("BUG: %q: %v", in, err)
		s.Printf("Error: %v.", err)
	default:
		s.Printf("Error: %v.", err)
	}
}
