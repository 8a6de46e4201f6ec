package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/etnz/pantry/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionMechanism(t *testing.T) {
	if testing.Short() {
		t.Skip("builds binaries")
	}
	tempDir := t.TempDir()

	helloSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	for _, k := range []string{%q, %q, %q} {
		fmt.Printf("%%s=%%s\n", k, os.Getenv(k))
	}
	fmt.Println("args", os.Args[1:])
}
`, EnvDefaultCurrency, EnvVerbose, date.TestingTodayEnv)

	helloPath := filepath.Join(tempDir, "pantry-hello")
	require.NoError(t, os.WriteFile(helloPath+".go", []byte(helloSource), 0644))
	build := exec.Command("go", "build", "-o", helloPath, helloPath+".go")
	build.Stderr = os.Stderr
	require.NoError(t, build.Run(), "compiling pantry-hello")

	pantryPath := filepath.Join(tempDir, "pantry")
	build = exec.Command("go", "build", "-o", pantryPath, "../pantry")
	build.Stderr = os.Stderr
	require.NoError(t, build.Run(), "compiling pantry")

	run := exec.Command(pantryPath, "-currency", "XYZ", "-today", "2026-02-03", "-v", "hello", "world")
	run.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}
	var stdout, stderr bytes.Buffer
	run.Stdout, run.Stderr = &stdout, &stderr
	require.NoError(t, run.Run(), "stderr: %s", stderr.String())

	out := stdout.String()
	assert.Contains(t, out, EnvDefaultCurrency+"=XYZ")
	assert.Contains(t, out, EnvVerbose+"=true")
	assert.Contains(t, out, date.TestingTodayEnv+"=2026-02-03")
	assert.Contains(t, out, "args [world]")
}
