package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/plumekit/gjf/internal/app"
)

func main() {
	// Create context that cancels on SIGINT (Ctrl+C) or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := app.Run(ctx, os.Args, os.Stdout, os.Stderr, nil)
	if err != nil {
		//nolint:gocritic // os.Exit is intentional; the fixup status must propagate
		os.Exit(app.ExitStatus(err))
	}
}
