package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/navpanel/errors"
)

// ErrorHandler turns structured errors into short user-facing hints.
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates an error handler writing to stderr.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a hint for err and returns it unchanged.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	w := h.Out
	if w == nil {
		w = os.Stderr
	}

	navErr, isNav := errors.As(err)

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(w, "❌ Configuration not found. Create a navpanel.yml listing your modules, or pass --config.\n")
		if isNav && navErr.Details["searchPath"] != nil {
			fmt.Fprintf(w, "Searched from %v\n", navErr.Details["searchPath"])
		}

	case errors.ErrCodeConfigValidation:
		fmt.Fprintf(w, "❌ Configuration is invalid")
		if isNav && navErr.Details["path"] != nil {
			fmt.Fprintf(w, " (%v)", navErr.Details["path"])
		}
		fmt.Fprintln(w)
		if isNav {
			if violations, ok := navErr.Details["violations"].([]string); ok {
				for _, v := range violations {
					fmt.Fprintf(w, "  %s\n", v)
				}
			}
		}
		fmt.Fprintf(w, "Run 'navpanel schema' to print the expected shape.\n")

	case errors.ErrCodeUnsupportedFormat:
		fmt.Fprintf(w, "❌ Unsupported configuration format")
		if isNav && navErr.Details["extension"] != nil {
			fmt.Fprintf(w, " %q", navErr.Details["extension"])
		}
		fmt.Fprintf(w, ". Use .yml, .yaml, .toml or .json.\n")

	case errors.ErrCodeInvalidInput:
		fmt.Fprintf(w, "❌ %s\n", messageOf(err))

	default:
		fmt.Fprintf(w, "❌ Error: %v\n", err)
	}

	if h.Verbose && isNav {
		fmt.Fprintf(w, "\nError details:\n%s\n", navErr.ToJSON())
	}
	return err
}

func messageOf(err error) string {
	if navErr, ok := errors.As(err); ok {
		return navErr.Message
	}
	return err.Error()
}
