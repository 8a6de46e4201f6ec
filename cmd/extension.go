package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/etnz/pantry/date"
)

const (
	EnvDefaultCurrency = "PANTRY_DEFAULT_CURRENCY"
	EnvStyle           = "PANTRY_STYLE"
	EnvVerbose         = "PANTRY_VERBOSE"
)

// RunExtension attempts to find and execute an external pantry-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// Global flags are passed as environment variables. The -today flag, when set,
// is passed as date.TestingTodayEnv so that the extension agrees on expiry.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "pantry-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logger().Printf("external command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvDefaultCurrency+"="+*defaultCurrency)
	cmd.Env = append(cmd.Env, EnvStyle+"="+*styleFlag)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))
	if *todayFlag != "" {
		on, err := today()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return true, 2
		}
		cmd.Env = append(cmd.Env, date.TestingTodayEnv+"="+on.String())
	}

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		log.Printf("Error executing external command %q: %v", externalCmdName, err)
		return true, 1
	}

	return true, 0
}
