package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"strings"
	"testing"

	"github.com/etnz/pantry/renderer"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plain sets the global flags to reproducible values for the duration of the test.
func plain(t *testing.T) {
	t.Helper()
	style, on := *styleFlag, *todayFlag
	*styleFlag, *todayFlag = renderer.StylePlain, "2026-10-15"
	t.Cleanup(func() { *styleFlag, *todayFlag = style, on })
}

func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return c.Execute(context.Background(), f)
}

func TestShellCmd(t *testing.T) {
	plain(t)
	var out strings.Builder
	c := &shellCmd{in: strings.NewReader("LIST storages\nGO to Freezer\nLIST value\nEXIT\n"), out: &out}
	assert.Equal(t, subcommands.ExitSuccess, execute(t, c, "-demo", "-seed", "42"))
	assert.Contains(t, out.String(), "| Fridge |")
	assert.Contains(t, out.String(), "Now in Freezer.")
	assert.Contains(t, out.String(), "Value of Freezer:")
	assert.Contains(t, out.String(), "Bye.")
}

func TestShellCmdRejectsArguments(t *testing.T) {
	plain(t)
	c := &shellCmd{in: strings.NewReader(""), out: &strings.Builder{}}
	assert.Equal(t, subcommands.ExitUsageError, execute(t, c, "extra"))
}

func TestDemoCmdIsReproducible(t *testing.T) {
	plain(t)
	var a, b strings.Builder
	require.Equal(t, subcommands.ExitSuccess, execute(t, &demoCmd{out: &a}, "-seed", "7"))
	require.Equal(t, subcommands.ExitSuccess, execute(t, &demoCmd{out: &b}, "-seed", "7"))
	assert.Equal(t, a.String(), b.String())
}

func TestDemoCmdQuery(t *testing.T) {
	plain(t)
	var out strings.Builder
	require.Equal(t, subcommands.ExitSuccess, execute(t, &demoCmd{out: &out}, "-seed", "7", "-query", "$.storages[*].storage"))
	var names []string
	require.NoError(t, json.Unmarshal([]byte(out.String()), &names))
	assert.Equal(t, []string{"Freezer", "Fridge", "Pantry"}, names)
}

func TestTopicCmd(t *testing.T) {
	plain(t)
	var out strings.Builder
	assert.Equal(t, subcommands.ExitSuccess, execute(t, &topicCmd{out: &out}))
	assert.Contains(t, out.String(), "# pantry")

	out.Reset()
	assert.Equal(t, subcommands.ExitSuccess, execute(t, &topicCmd{out: &out}, "go", "units"))
	assert.Contains(t, out.String(), "# GO")
	assert.Contains(t, out.String(), "# Units")

	assert.Equal(t, subcommands.ExitFailure, execute(t, &topicCmd{out: &out}, "nope"))
}

func TestUnitsCmd(t *testing.T) {
	plain(t)
	var out strings.Builder
	assert.Equal(t, subcommands.ExitSuccess, execute(t, &unitsCmd{out: &out}))
	assert.Contains(t, out.String(), "| ml | volume | 1000 ml = 1 l |")
}

func TestCompletionCoversCommands(t *testing.T) {
	c := Completion()
	for _, name := range []string{"shell", "demo", "topic", "units"} {
		assert.Contains(t, c.Sub, name)
	}
}

func TestTopicCmdAll(t *testing.T) {
	plain(t)
	var out strings.Builder
	assert.Equal(t, subcommands.ExitSuccess, execute(t, &topicCmd{out: &out}, "*"))
	for _, title := range []string{"# ADD", "# REMOVE", "# GO", "# FIND", "# LIST", "# HELP", "# EXIT", "# Units"} {
		assert.Contains(t, out.String(), title)
	}
}
