package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/wurt83ow/maintracker/internal/app"
)

// @title Maintenance tracker API
// @version 1.0
// @description Maintenance event log with MTBF, MTTR, availability and preventive scheduling.
// @host localhost:8080
// @BasePath /
func main() {
	// Create a root context with the possibility of cancellation
	ctx, cancel := context.WithCancel(context.Background())

	// Create a channel for signal handling
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		// Wait for a signal
		sig := <-signalCh
		log.Printf("Received signal: %+v", sig)

		// Cancel the context, Serve shuts the server down
		cancel()
	}()

	// Start the server
	app.NewServer(ctx).Serve()
}
