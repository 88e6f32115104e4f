package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"astro-booking/internal/config"
	"astro-booking/internal/database"
	"astro-booking/internal/nasa"
	"astro-booking/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(cfg.DatabaseURL(), cfg.MigrationsPath); err != nil {
			log.Fatalf("Error migrating database: %v", err)
		}
	}

	db, err := database.New(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	srv := server.NewServer(cfg, db, nasa.NewClient(cfg.NASAAPIURL, cfg.NASAAPIKey))

	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		log.Fatalf("Error creating listener: %v", err)
	}

	errChan := make(chan error, 1)

	go func() {
		log.Printf("Server started on %s...", srv.Addr)
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server encountered an error: %v", err)
			errChan <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Wait for an interrupt or server error
	select {
	case err := <-errChan:
		log.Printf("Server error: %v", err)
	case sig := <-stop:
		log.Printf("Received signal %s, initiating graceful shutdown", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// Open countdown streams end when their request context is cancelled
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Could not gracefully shut down the server: %v", err)
		}

		log.Println("Server gracefully stopped")
	}
}
