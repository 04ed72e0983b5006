package main

import (
	"context"
	"launch-gateway/internal/server"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	srv := server.NewServer()

	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		log.Fatalf("Error creating listener: %v", err)
	}

	// Channel to receive errors from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Gateway listening on %s...", srv.Addr)
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Wait for an interrupt or server error
	select {
	case err := <-errChan:
		log.Fatalf("Server error: %v", err)
	case sig := <-stop:
		log.Printf("Received signal %s, initiating graceful shutdown", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shut down the server: %v", err)
		}

		log.Println("Server gracefully stopped")
	}
}
