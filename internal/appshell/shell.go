// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cancerit/QUANTS-sub000/internal/cmdutil"
)

// Main runs a tool under SIGINT/SIGTERM cancellation and exits with its
// code. The first signal cancels the run so partial outputs are removed; a
// second one kills the process. No arguments prints help.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
	}()

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == cmdutil.ExitOK {
		code = cmdutil.ExitCancelled
	}
	stop()
	os.Exit(code)
}
