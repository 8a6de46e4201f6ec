package shell

import (
	"errors"
	"strings"
	"unicode"
)

// ErrBlankInput reports an empty command line.
var ErrBlankInput = errors.New("blank input")

// Input is a parsed command line: "<command> [subcommand] [argument...]".
type Input struct {
	Keyword Keyword
	// Command is the command as typed.
	Command string
	// Subcommand is lowercased, empty when absent.
	Subcommand string
	// Argument is the rest of the line, trimmed, with its case and inner spacing kept.
	Argument string
}

// Parse splits a command line into its command, subcommand and argument.
//
// An unknown command is not an error, its Keyword is Unknown.
func Parse(line string) (Input, error) {
	command, rest := cut(line)
	if command == "" {
		return Input{}, ErrBlankInput
	}
	sub, rest := cut(rest)
	return Input{
		Keyword:    ParseKeyword(command),
		Command:    command,
		Subcommand: strings.ToLower(sub),
		Argument:   strings.TrimSpace(rest),
	}, nil
}

// cut returns the first whitespace separated token of s and what follows it.
func cut(s string) (token, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

// String returns the canonical form of the input.
func (in Input) String() string {
	parts := []string{in.Keyword.String()}
	if in.Keyword == Unknown {
		parts[0] = in.Command
	}
	if in.Subcommand != "" {
		parts = append(parts, in.Subcommand)
	}
	if in.Argument != "" {
		parts = append(parts, in.Argument)
	}
	return strings.Join(parts, " ")
}
