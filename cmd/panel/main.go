package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"

	"chat-panel/infrastructure/fixture"
	"chat-panel/internal"
	"chat-panel/moderation"
	"chat-panel/observability"
	"chat-panel/repositories"
	"chat-panel/runtime/workers"
	"chat-panel/search"
	"chat-panel/services"
	"chat-panel/session"
)

// Exit codes to provide meaningful status to the operating system.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Panel terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, drives the REPL, and centralizes error
// reporting so deferred cleanups execute before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Avatar cache (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("cache opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug cache inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(db, config.DebugPort, endpoint, AvatarMapper)
	}

	// 3. Timeline search index (in-memory: it rebuilds with every session)
	blugeWriter, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 4. Scripted collaborator
	var api *fixture.API
	if config.FixturePath != "" {
		if api, err = fixture.Load(config.FixturePath); err != nil {
			return exitConfig, err
		}
	} else {
		api = demoFixture()
	}

	// 5. Session wiring
	cache := repositories.NewAvatarCache(db, logger, config.AvatarCacheTTL)
	resolver := services.NewAvatarResolver(api, cache, logger, config.AvatarOrigin)
	loader := services.NewDirectoryLoader(api, resolver, logger, config.EnrichmentWorkers)
	stats := observability.NewSessionStats()
	index := search.NewIndex(blugeWriter, logger)

	sess := session.New(api, loader, logger, config.BufferSize)
	sess.AddSinks(stats, index)

	if words := config.WordList(); len(words) > 0 {
		maskChar, _ := config.MaskRune()
		filter, err := moderation.NewFilter(words, maskChar)
		if err != nil {
			return exitConfig, fmt.Errorf("moderation filter: %w", err)
		}
		sess.SetModerator(filter.Mask)
	}

	sup := workers.NewSupervisor(logger)
	sup.Add(
		sess,
		workers.NewReporterWorker(logger, stats, config.ReportInterval),
		workers.NewCacheGCWorker(db, logger, config.CacheGCInterval),
	)

	done := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(done)
	}()

	// 6. Drive the panel
	repl := newREPL(sess, index, logger)
	repl.Run(ctx)

	// 7. Graceful shutdown
	logger.Info("Shutting down gracefully...")
	sup.Stop()
	<-done
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	var options badger.Options
	if config.BadgerFilepath == "" {
		options = badger.DefaultOptions("").WithInMemory(true)
	} else {
		options = badger.DefaultOptions(config.BadgerFilepath)
	}

	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG).WithBypassLockGuard(true)
	}
	return options.WithLoggingLevel(badger.WARNING)
}

// AvatarMapper shapes avatar cache entries for the debug inspector.
func AvatarMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	row.Type = "AVATAR"
	row.Detail = string(val)
	return row
}
