// Package main provides the scafflint CLI.
package main

import (
	"errors"
	"os"

	"github.com/leapstack-labs/scafflint/internal/cli"
	"github.com/leapstack-labs/scafflint/internal/cli/commands"
)

func main() {
	if err := cli.Execute(); err != nil {
		// The hook command reports its verdict through the exit code.
		var exitErr *commands.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
