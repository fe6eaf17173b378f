package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/maryamazeem12/websitelive/internal/config"
	"github.com/maryamazeem12/websitelive/internal/password"
	"github.com/maryamazeem12/websitelive/internal/server"
	"github.com/maryamazeem12/websitelive/internal/storage"
)

func main() {
	loadLocalEnv()

	cfg := config.Load()

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoTimeout, cfg.DataDir)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}
	defer store.Close(ctx)

	if cfg.SeedProducts {
		if err := storage.Seed(ctx, store); err != nil {
			log.Printf("seed products: %v", err)
		}
	}

	if strings.EqualFold(cfg.PasswordHasher, "legacy") {
		log.Println("WARNING: legacy password hashing enabled; new hashes will use the fast digest scheme")
	}
	hasher := password.New(cfg.PasswordHasher)

	srv := server.New(cfg, store, hasher)

	go func() {
		log.Printf("storefront backend listening on %s (database: %s)", cfg.HTTPAddress(), store.Kind())
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}
}
