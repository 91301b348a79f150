package main

import (
	"chat-archive/internal"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	DebugPort      int    `env:"DEBUG_PORT,default=8081"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
}

// The viewer serves the inspector over a store another node may hold open.
func main() {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// BypassLockGuard allows opening while a node holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	stats := func() map[string]any {
		return map[string]any{
			"status": "viewer (read-only)",
			"time":   time.Now().Format(time.RFC822),
		}
	}

	server := internal.StartDebugServer(logger, db, config.DebugPort, internal.Controls{Stats: stats})
	defer server.Close()
	fmt.Printf("Viewer started at http://localhost:%d/inspect?prefix=conv:\n", config.DebugPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
}
