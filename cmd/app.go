// Package cmd implements the CLI application to manage a pantry.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/etnz/pantry"
	"github.com/etnz/pantry/date"
	"github.com/etnz/pantry/docs"
	"github.com/etnz/pantry/renderer"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	defaultCurrency = flag.String("currency", envOr(EnvDefaultCurrency, pantry.DefaultCurrency), "Currency of new prices")
	todayFlag       = flag.String("today", "", "Date used for expiry, YYYY-MM-DD or relative like -3d (default today)")
	styleFlag       = flag.String("style", envOr(EnvStyle, renderer.StyleAuto), "Markdown style: "+strings.Join(renderer.Styles, ", "))
	// Verbose enables the diagnostic log on stderr.
	Verbose = flag.Bool("v", false, "Log diagnostics to stderr")
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&shellCmd{}, "")
	c.Register(&demoCmd{}, "")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&unitsCmd{}, "documentation")
}

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"currency": predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
			"today":    predict.Something,
			"style":    predict.Set(renderer.Styles),
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"shell": {Flags: map[string]complete.Predictor{
				"demo": predict.Nothing,
				"seed": predict.Something,
			}},
			"demo": {Flags: map[string]complete.Predictor{
				"seed":  predict.Something,
				"query": predict.Something,
			}},
			"topic": {Args: predict.Set(append(topics, docs.All))},
			"units": {},
		},
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// today returns the date the -today flag stands for.
func today() (date.Date, error) {
	if *todayFlag == "" {
		return date.Today(), nil
	}
	return date.Parse(*todayFlag)
}

// logger returns the diagnostic logger, silent unless -v is set.
func logger() *log.Logger {
	if *Verbose {
		return log.New(os.Stderr, "[pantry] ", log.Ltime)
	}
	return log.New(io.Discard, "", 0)
}

func printMarkdown(w io.Writer, md string) {
	fmt.Fprint(w, renderer.Markdown(md, *styleFlag))
}
