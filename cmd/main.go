package main

import (
	"context"
	"os"
	"os/signal"

	"pacwrap/internal/cli"
	"pacwrap/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code, err := cli.Execute(ctx)
	stop()

	if err != nil {
		ui.PrintError(os.Stderr, err)
	}
	os.Exit(code)
}
