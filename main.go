// Package main is the entry point for the jirareport CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/danielolaszy/jirareport/cmd"
	"github.com/danielolaszy/jirareport/internal/logging"
)

const version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logging.Debug("starting jirareport", "version", version, "log_level", logging.LevelFromEnv())

	if err := cmd.Execute(ctx); err != nil {
		logging.Error("command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, "An error occurred:", err)
		stop()
		os.Exit(1)
	}
}
