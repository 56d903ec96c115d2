// Package main is the entry point for the ris CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ynsinc/ris/internal/cmd"
	oerrors "github.com/ynsinc/ris/internal/errors"
	"github.com/ynsinc/ris/internal/output"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Commands that render their own report set Printed.
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			output.Debug("exiting", "code", exitErr.Code, "reason", cmd.ExitCodeName(exitErr.Code))
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
