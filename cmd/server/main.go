/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the salary enhancement engine server. Handles
  configuration, dependency wiring, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load pay scale tables (built-in charts, or JSON overrides)
  3. Create the engine and API handler
  4. Configure the HTTP router
  5. Start the server with graceful shutdown

COMMAND-LINE FLAGS:
  -port        HTTP server port (default: 8080)
  -historical  Path to a JSON override for the historical pay table
  -current     Path to a JSON override for the current pay table
               (omit both to use the built-in BPS 2017/2022 charts)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  # Run with built-in charts
  ./server

  # Run with a revised current chart
  ./server -current=./scales/bps-2026.json

SEE ALSO:
  - api/server.go: Router configuration
  - factory/scales.go: JSON pay scale loading
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shinystars75/salary-engine/api"
	"github.com/shinystars75/salary-engine/engine"
	"github.com/shinystars75/salary-engine/factory"
	"github.com/shinystars75/salary-engine/payscale"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	historicalPath := flag.String("historical", "", "JSON override for the historical pay table")
	currentPath := flag.String("current", "", "JSON override for the current pay table")
	flag.Parse()

	// Load tables
	sf := factory.NewScaleFactory()

	historical := payscale.BPS2017()
	if *historicalPath != "" {
		t, err := sf.LoadTable(*historicalPath)
		if err != nil {
			log.Fatalf("Failed to load historical pay table: %v", err)
		}
		historical = t
	}

	current := payscale.BPS2022()
	if *currentPath != "" {
		t, err := sf.LoadTable(*currentPath)
		if err != nil {
			log.Fatalf("Failed to load current pay table: %v", err)
		}
		current = t
	}

	// Wire engine and router
	eng := engine.New(historical, current)
	handler := api.NewHandler(eng)
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on http://localhost:%d", *port)
		log.Printf("📊 API available at http://localhost:%d/api", *port)
		log.Printf("Pay scales: historical=%s current=%s", historical.Name(), current.Name())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
