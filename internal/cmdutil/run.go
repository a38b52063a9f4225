// internal/cmdutil/run.go
package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cancerit/QUANTS-sub000/core/errs"
	"github.com/cancerit/QUANTS-sub000/internal/writers"
)

// Exit codes shared by all tools.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitIO        = 3
	ExitCancelled = 130
)

// Fail prints err for the user and maps it to an exit code. The error kind
// decides the code; hints are printed on their own line.
func Fail(stderr io.Writer, tool string, err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCancelled
	case writers.IsBrokenPipe(err):
		return ExitOK
	}
	var e *errs.Error
	if errors.As(err, &e) && e.Hint != "" {
		_, _ = fmt.Fprintf(stderr, "%s: error: %s: %s\n", tool, e.Kind, e.Msg)
		_, _ = fmt.Fprintf(stderr, "%s: hint: %s\n", tool, e.Hint)
	} else {
		_, _ = fmt.Fprintf(stderr, "%s: error: %v\n", tool, err)
	}
	return errs.ExitCode(err)
}
