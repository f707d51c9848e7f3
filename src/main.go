package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expense-tracker-api/src/api"
	"expense-tracker-api/src/config"
	"expense-tracker-api/src/db"
	"expense-tracker-api/src/db/memory"
	pgstore "expense-tracker-api/src/db/sql"
	"expense-tracker-api/src/db/sqlite"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Store initialization failed (%s): %v", cfg.DataBackend, err)
	}
	defer store.Close()

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        api.NewRouter(store, cfg.AllowedOrigin),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.Printf("INFO: Shutdown signal received: %s", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("ERROR: Server shutdown error: %v", err)
		}
	}()

	log.Printf("API server running on port %s (backend %s)", cfg.Port, cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}

	<-done
	log.Println("Server stopped")
}

func openStore(cfg config.Config) (db.Store, error) {
	switch cfg.DataBackend {
	case config.BackendSQLite:
		store, err := sqlite.New(cfg.SQLiteDBPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendMemory:
		log.Println("INFO: Using in-memory store; data will not survive a restart")
		return memory.New(), nil
	default:
		if err := db.Migrate(cfg.DatabaseURL); err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return pgstore.NewStore(pool), nil
	}
}
