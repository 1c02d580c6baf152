package main

import (
	"bufio"
	"context"
	"fmt"
	"nym-chat/internal"
	"nym-chat/runtime"
	"os"
	"os/signal"
	"syscall"

	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run drives a client session from the terminal until stdin is closed,
// /quit is typed or the process is interrupted.
func run() error {
	config, err := internal.LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	console := NewConsole(os.Stdout)
	orchestrator, err := runtime.NewOrchestrator(log, config, console, console)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orchestrator.Start(ctx)
	driven := make(chan error, 1)
	go func() {
		driven <- orchestrator.Drive(ctx, nil)
	}()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	console.Println(usage)
	for quit := false; !quit; {
		select {
		case <-ctx.Done():
			quit = true
		case line, ok := <-lines:
			if !ok {
				quit = true
				continue
			}
			quit = handle(ctx, orchestrator, console, parseCommand(line, config.SearchLimit))
		}
	}
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

// handle runs one command and reports whether the console should quit.
func handle(ctx context.Context, orchestrator *runtime.Orchestrator, console *Console, cmd command) bool {
	switch cmd.kind {
	case kindSend:
		if err := orchestrator.Submit(cmd.recipient, cmd.payload); err != nil {
			console.Error(err)
		}
	case kindHistory:
		entries, err := orchestrator.History(cmd.direction, cmd.limit)
		if err != nil {
			console.Error(err)
			return false
		}
		console.Entries(entries)
	case kindFind:
		entries, err := orchestrator.Find(ctx, cmd.terms)
		if err != nil {
			console.Error(err)
			return false
		}
		console.Entries(entries)
	case kindStats:
		console.Stats(orchestrator.Stats())
	case kindAddress:
		if address, ok := console.Address(); ok {
			console.Println(address)
		} else {
			console.Println("Fetching address...")
		}
	case kindHelp:
		console.Println(usage)
	case kindUnknown:
		console.Println("Unknown command\n" + usage)
	case kindQuit:
		return true
	}
	return false
}
