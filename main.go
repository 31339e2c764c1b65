package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/danielhkuo/pollboard/auth"
	"github.com/danielhkuo/pollboard/cliparse"
	"github.com/danielhkuo/pollboard/router"
	"github.com/danielhkuo/pollboard/store"
	"github.com/danielhkuo/pollboard/store/inmemory"
	"github.com/danielhkuo/pollboard/store/postgres"
)

func main() {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	var st store.Store
	switch cfg.StoreType {
	case cliparse.StoreMemory:
		slog.Info("Using in-memory store; all data is lost on shutdown")
		st = inmemory.New()
	default:
		// Connect to PostgreSQL
		dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		// Verify connection
		if err := dbConn.Ping(); err != nil {
			slog.Error("database ping failed", "error", err)
			os.Exit(1)
		}

		// Create schema (tables)
		if err := postgres.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready")

		st = postgres.New(dbConn)
	}

	// Sessions wrap the whole mux so every handler sees the caller identity
	sessions := auth.NewSessionManager()

	// Create router
	mux := router.NewRouter(st, sessions)

	// Create server
	server := http.Server{
		Handler: sessions.LoadAndSave(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
