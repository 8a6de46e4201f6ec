package shell

import "strings"

// Keyword is the closed set of shell commands.
type Keyword int

const (
	// Unknown is any input that is not a known command.
	Unknown Keyword = iota
	Add
	Remove
	Go
	Find
	List
	Help
	Exit
)

// Keywords lists every known command.
var Keywords = []Keyword{Add, Remove, Go, Find, List, Help, Exit}

var keywordNames = map[Keyword]string{
	Unknown: "UNKNOWN",
	Add:     "ADD",
	Remove:  "REMOVE",
	Go:      "GO",
	Find:    "FIND",
	List:    "LIST",
	Help:    "HELP",
	Exit:    "EXIT",
}

func (k Keyword) String() string {
	if name, ok := keywordNames[k]; ok {
		return name
	}
	return keywordNames[Unknown]
}

// Topic returns the help topic of the command.
func (k Keyword) Topic() string {
	if k == Unknown {
		return "readme"
	}
	return strings.ToLower(k.String())
}

// ParseKeyword matches a command case-insensitively. It never fails: anything
// else is Unknown.
func ParseKeyword(s string) Keyword {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, k := range Keywords {
		if keywordNames[k] == s {
			return k
		}
	}
	return Unknown
}
