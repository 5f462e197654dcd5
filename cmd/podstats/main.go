package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmd, closeLogs := newRootCommand()
	err := cmd.ExecuteContext(ctx)
	if closeErr := closeLogs(); closeErr != nil {
		fmt.Fprintln(os.Stderr, "close log file:", closeErr)
	}
	stop()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
