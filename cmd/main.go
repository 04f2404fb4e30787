package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/orgball2608/insta-extractor/internal/app"
	"github.com/orgball2608/insta-extractor/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	log := logger.New(logger.Opts{})

	app := fx.New(
		fx.Logger(log),
		app.Module,
	)

	if err := app.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	// Done closes on SIGINT/SIGTERM or when the one-shot workflow finishes
	// and shuts the app down itself.
	sig := <-app.Done()
	if sig == syscall.SIGINT {
		fmt.Println("\nExtraction interrupted by user.")
	}

	if err := app.Stop(context.Background()); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}
}
