package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/eripro/connect/internal/api"
	"github.com/eripro/connect/internal/chat"
	"github.com/eripro/connect/internal/config"
	"github.com/eripro/connect/internal/fixtures"
	"github.com/eripro/connect/internal/observ"
	"github.com/eripro/connect/internal/repository/memory"
	"github.com/eripro/connect/internal/simulator"
	"github.com/eripro/connect/internal/summary"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := observ.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	// All state is in-process, seeded from fixtures at boot. A restart
	// resets the world; that is the intended operating model.
	userRepo := memory.NewUserStore(fixtures.Users())
	channelRepo := memory.NewChannelStore(fixtures.Channels())
	messageRepo := memory.NewMessageStore(fixtures.Messages())
	itemRepo := memory.NewProductivityStore(fixtures.ProductivityItems())
	unread := memory.NewUnreadStore()

	chatSvc := chat.NewService(userRepo, channelRepo, messageRepo, unread, logger)
	summarySvc := summary.NewService(cfg.OpenAIKey, logger)

	router := api.NewRouter(api.Handlers{
		Auth:         api.NewAuthHandler(userRepo, cfg.JWTSecret, cfg.TokenTTL, logger),
		Channels:     api.NewChannelHandler(userRepo, channelRepo, unread, chatSvc, logger),
		Messages:     api.NewMessageHandler(userRepo, unread, chatSvc, logger),
		Users:        api.NewUserHandler(userRepo, logger),
		Productivity: api.NewProductivityHandler(userRepo, itemRepo, logger),
		Summary:      api.NewSummaryHandler(userRepo, unread, summarySvc, logger),
	}, cfg.JWTSecret)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.SimulatorEnabled {
		sim := simulator.New(userRepo, channelRepo, chatSvc, cfg.SimulatorInterval, logger)
		go sim.Run(ctx)
	}

	logger.Info("starting EriPro Connect",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Env),
		zap.Bool("simulator", cfg.SimulatorEnabled),
		zap.Bool("ai_briefings", cfg.OpenAIKey != ""),
	)

	return router.Run(":" + cfg.Port)
}
