package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/jsontree/errors"
)

// ErrorHandler turns jsontree errors into user-facing messages.
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle prints a friendly message for known error codes and returns the
// original error so callers can still exit non-zero.
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ Configuration file not found.\n")
		return err

	case errors.ErrCodeConfigValidation:
		fmt.Fprintf(os.Stderr, "❌ Invalid configuration: %v\n", err)
		fmt.Fprintf(os.Stderr, "Check jsontree.yml against the documented options.\n")
		return err

	case errors.ErrCodeDecodeFailed:
		fmt.Fprintf(os.Stderr, "❌ Could not parse the document: %v\n", err)
		fmt.Fprintf(os.Stderr, "Make sure the input is valid JSON or YAML.\n")
		return err

	case errors.ErrCodeWatchFailed:
		if treeErr, ok := err.(*errors.TreeError); ok {
			fmt.Fprintf(os.Stderr, "❌ Could not watch '%s' for changes\n", treeErr.Details["path"])
		} else {
			fmt.Fprintf(os.Stderr, "❌ File watching failed: %v\n", err)
		}
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		if h.Verbose {
			if treeErr, ok := err.(*errors.TreeError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", treeErr.ToJSON())
			}
		}
		return err
	}
}
