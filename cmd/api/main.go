package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"online-llm/config"
	"online-llm/internal/httpserver"
	"online-llm/internal/llm"
	"online-llm/pkg/log"
)

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

	logger.Info(ctx, "Starting Online LLM gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM wrapper (reads GEMINI_API_KEY from the environment)
	wrapperCfg := llm.Config{
		Model:  cfg.Gemini.Model,
		APIURL: cfg.Gemini.APIURL,
	}
	wrapper, err := llm.New(logger, wrapperCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM wrapper: ", err)
		return
	}
	logger.Infof(ctx, "LLM wrapper bound to model %s", wrapper.Model())

	// 4. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Generator:   wrapper,
		ListModels: func(ctx context.Context) ([]string, error) {
			return llm.ListAvailableModels(ctx, wrapperCfg)
		},
		RequestTimeout:  cfg.HTTPServer.RequestTimeout,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error(ctx, "HTTP server stopped with error: ", err)
	}
}
