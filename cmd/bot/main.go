package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sabreena6/jkssb-quiz-bot/internal/config"
	"github.com/sabreena6/jkssb-quiz-bot/internal/delivery/telegram"
	"github.com/sabreena6/jkssb-quiz-bot/internal/logger"
	"github.com/sabreena6/jkssb-quiz-bot/internal/repository"
	"github.com/sabreena6/jkssb-quiz-bot/internal/service"
)

func main() {
	// Load environment variables from .env file if present.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create bot api client", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Show welcome message",
		},
		{
			Command:     "help",
			Description: "Show available commands",
		},
		{
			Command:     "quiz",
			Description: "Start saved quiz",
		},
		{
			Command:     "leaderboard",
			Description: "Show top scorers",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	zl.Info("authorized on account", zap.String("username", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize repositories, services and the handler.
	quizRepo := repository.NewQuizRepository(cfg.QuizzesPath)
	scoreRepo := repository.NewScoreRepository(cfg.ScoresPath)

	quizService := service.NewQuizService(quizRepo, scoreRepo)

	handler := telegram.NewHandler(bot, zl, quizService, cfg.AdminIDs)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zl.Fatal("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
