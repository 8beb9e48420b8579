package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/sabreena6/jkssb-quiz-bot/internal/domain/entities"
	"github.com/sabreena6/jkssb-quiz-bot/internal/service"
)

type QuizService interface {
	Start(ctx context.Context, userID int64) (*entities.Session, error)
	Submit(ctx context.Context, userID int64, displayName, raw string) (service.AnswerResult, error)
	AddQuestion(ctx context.Context, block string) error
	Leaderboard(ctx context.Context) ([]service.ScoreEntry, error)
}

type Handler struct {
	bot         *tgbotapi.BotAPI
	logger      *zap.Logger
	quizService QuizService
	admins      map[int64]struct{}
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	quizService QuizService,
	adminIDs []int64,
) *Handler {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	return &Handler{
		bot:         bot,
		logger:      logger,
		quizService: quizService,
		admins:      admins,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message")
		return
	}

	from := update.Message.From
	chatID := update.Message.Chat.ID

	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.Int64("user_id", from.ID),
		zap.String("text", update.Message.Text),
	)

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			h.handleStart(chatID, from.ID)

		case "help":
			h.send(newPlainMessage(chatID, msgHelp))

		case "quiz":
			h.handleQuiz(ctx, chatID, from.ID)

		case "leaderboard":
			h.handleLeaderboard(ctx, chatID)

		default:
			h.send(newPlainMessage(chatID, msgUnknownCommand))
		}

		return
	}

	h.handleText(ctx, chatID, from, update.Message.Text)
}

func (h *Handler) isAdmin(userID int64) bool {
	_, ok := h.admins[userID]
	return ok
}

// displayName picks the name scores are recorded under.
func displayName(from *tgbotapi.User) string {
	return from.FirstName
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
