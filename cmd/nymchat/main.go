package main

import (
	"context"
	"fmt"
	"nym-chat/internal"
	"nym-chat/runtime"
	"nym-chat/ui"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the desktop window to a client session and blocks until the
// window is closed or the process is interrupted.
func run() error {
	config, err := internal.LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	a := app.NewWithID("nym-chat")

	var orchestrator *runtime.Orchestrator
	window := ui.NewWindow(a, func(recipient, payload string) error {
		return orchestrator.Submit(recipient, payload)
	})

	orchestrator, err = runtime.NewOrchestrator(log, config, window, window)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orchestrator.Start(ctx)

	driven := make(chan error, 1)
	go func() {
		driven <- orchestrator.Drive(ctx, fyne.Do)
	}()
	go func() {
		<-ctx.Done()
		fyne.Do(a.Quit)
	}()

	window.ShowAndRun()
	stop()

	if err = <-driven; err != nil {
		log.Error("Event loop stopped", "error", err)
	}
	if err = orchestrator.Stop(); err != nil {
		return fmt.Errorf("closing the session: %w", err)
	}
	log.Info("Program stopped cleanly")
	return nil
}
