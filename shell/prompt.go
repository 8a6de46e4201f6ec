package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/pantry"
	"github.com/etnz/pantry/date"
)

// AbortToken cancels a sequence of questions.
const AbortToken = "abort"

// MaxLineLength bounds the length of a command or an answer.
const MaxLineLength = 4096

var (
	// ErrAborted reports that the user typed AbortToken while answering a question.
	ErrAborted = errors.New("aborted")
	// ErrLineTooLong reports a line longer than MaxLineLength.
	ErrLineTooLong = errors.New("line too long")
)

// Prompter reads answers line by line.
//
// Format errors are never returned: the question is asked again until the
// answer is valid, the user aborts, or the input ends (io.EOF).
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter reads from 'in' and writes questions to 'out'.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine prints 'prompt' and returns the next line, or io.EOF.
//
// A line longer than MaxLineLength is consumed and dropped, the error wraps
// ErrLineTooLong and the next call reads the following line.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	var line []byte
	tooLong := false
	for {
		chunk, err := p.in.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			// +2 leaves room for "\r\n"
			if len(line) > MaxLineLength+2 {
				tooLong, line = true, nil
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) && (len(line) > 0 || tooLong) {
			// last line without a newline
			break
		}
		if err != nil {
			return "", err
		}
		break
	}
	text := strings.TrimRight(string(line), "\r\n")
	if tooLong || len(text) > MaxLineLength {
		return "", fmt.Errorf("%w, at most %d characters", ErrLineTooLong, MaxLineLength)
	}
	return text, nil
}

// Ask asks 'question' until the answer is not blank.
func (p *Prompter) Ask(question string) (string, error) {
	for {
		line, err := p.ReadLine(question + ": ")
		if errors.Is(err, ErrLineTooLong) {
			fmt.Fprintf(p.out, "%v, try again or abort.\n", err)
			continue
		}
		if err != nil {
			return "", err
		}
		answer := strings.TrimSpace(line)
		switch {
		case answer == "":
			fmt.Fprintln(p.out, "Please enter a value, or abort.")
		case strings.EqualFold(answer, AbortToken):
			return "", ErrAborted
		default:
			return answer, nil
		}
	}
}

// ask asks 'question' until 'parse' accepts the answer.
func ask[T any](p *Prompter, question string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.out, "%v, try again or abort.\n", err)
	}
}

// AskAmount asks for a non-negative amount.
func (p *Prompter) AskAmount(question string) (pantry.Quantity, error) {
	return ask(p, question, func(s string) (pantry.Quantity, error) {
		q, err := pantry.ParseQuantity(s)
		if err != nil {
			return q, err
		}
		if q.IsNegative() {
			return q, fmt.Errorf("amount %s is negative", q)
		}
		return q, nil
	})
}

// AskUnit asks for a known unit, restricted to 'kind' unless it is pantry.UnknownKind.
func (p *Prompter) AskUnit(question string, kind pantry.Kind) (pantry.Unit, error) {
	return ask(p, question, func(s string) (pantry.Unit, error) {
		u, err := pantry.ParseUnit(s)
		if err != nil {
			return u, err
		}
		if kind != pantry.UnknownKind && u.Kind() != kind {
			return pantry.UnknownUnit, fmt.Errorf("%s is a %s unit, this ingredient is measured in %s", u, u.Kind(), kind)
		}
		return u, nil
	})
}

// AskPrice asks for a price within [0, pantry.MaxUnitPrice].
func (p *Prompter) AskPrice(question, currency string) (pantry.Money, error) {
	return ask(p, question, func(s string) (pantry.Money, error) {
		m, err := pantry.ParseMoney(s, currency)
		if err != nil {
			return m, err
		}
		return m, pantry.ValidatePrice(m)
	})
}

// AskDate asks for a date, relative dates are resolved against 'today'.
func (p *Prompter) AskDate(question string, today date.Date) (date.Date, error) {
	return ask(p, question, func(s string) (date.Date, error) {
		return date.ParseFrom(today, s)
	})
}

// AskInt asks for an integer within [min, max].
func (p *Prompter) AskInt(question string, min, max int) (int, error) {
	return ask(p, question, func(s string) (int, error) {
		return parseInt(s, min, max)
	})
}
