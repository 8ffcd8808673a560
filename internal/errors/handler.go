package apperrors

import (
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies terminal color codes. It lives here rather than
// in the cli package so that cli can depend on apperrors.
type ColorProvider interface {
	Yellow() string
	Reset() string
}

// DefaultColorProvider emits no escape codes.
type DefaultColorProvider struct{}

func (DefaultColorProvider) Yellow() string { return "" }
func (DefaultColorProvider) Reset() string  { return "" }

// HandleRunError prints a status line describing why a benchmark or
// comparison run stopped and returns the matching exit code. A nil
// colors value disables coloring.
func HandleRunError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	suffix := ""
	if duration > 0 {
		suffix = fmt.Sprintf(" after %s%s%s", colors.Yellow(), duration, colors.Reset())
	}

	code := ExitCodeFor(err)
	switch code {
	case ExitErrorTimeout:
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached%s.\n", suffix)
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", colors.Yellow(), suffix, colors.Reset())
	case ExitErrorConfig:
		fmt.Fprintf(out, "Status: Configuration error: %v\n", err)
	default:
		fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	}
	return code
}
