package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/linkvote/auth"
	"github.com/danielhkuo/linkvote/config"
	"github.com/danielhkuo/linkvote/linkedin"
	"github.com/danielhkuo/linkvote/router"
	"github.com/danielhkuo/linkvote/store"
)

func main() {
	// Load .env if present (local dev); real deployments set the environment.
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		slog.Error("Error loading configuration", "error", err)
		os.Exit(1)
	}

	// Open the store
	st, err := store.OpenSQL(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("store open failed", "error", err)
		os.Exit(1)
	}
	defer st.Close()
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Seed candidates (out-of-band channel)
	if cfg.SeedFile != "" {
		n, err := loadSeedFile(st, cfg.SeedFile)
		if err != nil {
			slog.Error("candidate seeding failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Candidates seeded", "count", n)
	}

	tokens := auth.NewTokens(cfg.TokenSecret, cfg.TokenTTL)
	li := linkedin.New(cfg)

	// Create router
	handler := router.New(st, tokens, li)

	// Create server
	server := http.Server{
		Handler: handler,
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
