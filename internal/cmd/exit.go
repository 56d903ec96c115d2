// Package cmd provides command implementations for the ris CLI.
package cmd

import (
	"github.com/ynsinc/ris/internal/cmdtypes"
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case cmdtypes.ExitSuccess:
		return "Success"
	case cmdtypes.ExitGeneralError:
		return "General Error"
	case cmdtypes.ExitValidationError:
		return "Validation Error"
	case cmdtypes.ExitFileSystemError:
		return "File System Error"
	case cmdtypes.ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
