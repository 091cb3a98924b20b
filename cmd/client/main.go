package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/shopsync/internal/client/alerts"
	httpclient "github.com/iudanet/shopsync/internal/client/api"
	"github.com/iudanet/shopsync/internal/client/auth"
	"github.com/iudanet/shopsync/internal/client/cli"
	"github.com/iudanet/shopsync/internal/client/data"
	"github.com/iudanet/shopsync/internal/client/iocli"
	"github.com/iudanet/shopsync/internal/client/notify"
	"github.com/iudanet/shopsync/internal/client/storage"
	"github.com/iudanet/shopsync/internal/client/storage/boltdb"
	"github.com/iudanet/shopsync/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "shopsync-client.db", "Path to local database")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx := context.Background()

	// Открываем BoltDB storage (кэш доменов + сессия устройства)
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := httpclient.NewClient(*serverURL)
	cache := storage.NewCache(boltStorage)

	authService := auth.NewService(apiClient, boltStorage, logger)
	dataService := data.NewService(cache)
	dispatcher := notify.NewLogDispatcher(logger)
	evaluator := alerts.NewEvaluator(apiClient, dispatcher, logger)
	syncService := sync.NewService(cache, boltStorage, apiClient, evaluator, logger)

	c := cli.New(iocli.NewStdio(), authService, dataService, syncService, printVersion)
	c.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("ShopSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
