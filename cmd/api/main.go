package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"collab-command-engine/config"
	_ "collab-command-engine/docs" // Swagger docs
	"collab-command-engine/internal/httpserver"
	"collab-command-engine/internal/lexicon"
	parserHTTP "collab-command-engine/internal/parser/delivery/http"
	"collab-command-engine/internal/parser/usecase"
	"collab-command-engine/internal/roster"
	"collab-command-engine/pkg/kdate"
	"collab-command-engine/pkg/log"
)

// @title       Collab Command Engine API
// @description Deterministic natural-language command extraction for chat messages.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Collab Command Engine...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Extraction engine
	dates, err := kdate.NewResolver(cfg.Engine.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to %s: %v", cfg.Engine.Timezone, kdate.DefaultTimezone, err)
		dates, _ = kdate.NewResolver(kdate.DefaultTimezone)
	}

	lex, err := lexicon.Load(cfg.Engine.LexiconPath)
	if err != nil {
		logger.Warnf(ctx, "Lexicon overlay not loaded, using built-ins: %v", err)
	}

	names := roster.NewResolver(lex.Honorifics)
	parserUC := usecase.New(logger, dates, names, lex)
	parserHandler := parserHTTP.New(logger, parserUC)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		ParserHandler:   parserHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
