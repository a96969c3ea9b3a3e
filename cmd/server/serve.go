package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"time"
)

const shutdownDrain = 30 * time.Second

// writeTimeout leaves room for the upstream call. An unbounded upstream call
// gets an unbounded write deadline.
func writeTimeout(llmTimeout time.Duration) time.Duration {
	if llmTimeout <= 0 {
		return 0
	}
	return llmTimeout + 15*time.Second
}

// serve runs the server on ln until a signal arrives on stop, then waits up
// to drain for in-flight requests before returning.
func serve(server *http.Server, ln net.Listener, stop <-chan os.Signal, drain time.Duration) error {
	done := make(chan error, 1)

	go func() {
		<-stop
		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), drain)
		defer cancel()
		done <- server.Shutdown(ctx)
	}()

	if err := server.Serve(ln); err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}

	if err := <-done; err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
