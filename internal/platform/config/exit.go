package config

import (
	"fmt"
	"os"
)

// ExitFailure is the status a command exits with when it cannot serve.
const ExitFailure = 1

// Exitf writes a formatted error message to stderr and exits with ExitFailure.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(ExitFailure)
}
