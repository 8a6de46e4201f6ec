package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownCommand reports a line whose command is not a known Keyword.
var ErrUnknownCommand = errors.New("unknown command")

// IllegalCommandError reports a subcommand the command does not know.
type IllegalCommandError struct {
	Keyword    Keyword
	Subcommand string
}

func (e *IllegalCommandError) Error() string {
	return fmt.Sprintf("%s does not understand %q", e.Keyword, e.Subcommand)
}

// Handler executes one command.
type Handler interface {
	Execute(s *Session, in Input) error
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(s *Session, in Input) error

func (f HandlerFunc) Execute(s *Session, in Input) error { return f(s, in) }

// vocabulary is a Handler that dispatches on the subcommand.
//
// Without a subcommand it prints the command help. An unknown subcommand is an
// *IllegalCommandError.
type vocabulary struct {
	keyword Keyword
	// bare, when set, runs instead of the help when there is no subcommand.
	bare  HandlerFunc
	words map[string]HandlerFunc
}

func (v vocabulary) Execute(s *Session, in Input) error {
	if in.Subcommand == "" {
		if v.bare != nil {
			return v.bare(s, in)
		}
		return s.Help(v.keyword)
	}
	h, ok := v.words[in.Subcommand]
	if !ok {
		return &IllegalCommandError{Keyword: v.keyword, Subcommand: in.Subcommand}
	}
	return h(s, in)
}

// Registry maps every Keyword to its Handler.
type Registry map[Keyword]Handler

// NewRegistry returns the registry of every command.
func NewRegistry() Registry {
	return Registry{
		Add:     addHandler(),
		Remove:  removeHandler(),
		Go:      goHandler(),
		Find:    findHandler(),
		List:    listHandler(),
		Help:    helpHandler(),
		Exit:    exitHandler(),
		Unknown: HandlerFunc(unknown),
	}
}

// Of returns the handler bound to 'k', the Unknown handler if there is none.
func (r Registry) Of(k Keyword) Handler {
	if h, ok := r[k]; ok {
		return h
	}
	return r[Unknown]
}

// unknown handles lines that do not start with a known command.
func unknown(s *Session, in Input) error {
	return fmt.Errorf("%w %q, type HELP for the list of commands", ErrUnknownCommand, in.Command)
}

// argument returns the input argument, asking for it when missing.
func argument(s *Session, in Input, question string) (string, error) {
	if in.Argument != "" {
		return in.Argument, nil
	}
	return s.Prompt.Ask(question)
}

// parseInt parses an integer within [min, max].
func parseInt(s string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%d is out of range [%d, %d]", n, min, max)
	}
	return n, nil
}
