package telegram

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/sabreena6/jkssb-quiz-bot/internal/service"
)

// handleStart sends the welcome message, extended with the question
// submission template for admins.
func (h *Handler) handleStart(chatID, userID int64) {
	text := msgWelcome
	if h.isAdmin(userID) {
		text += msgAdminHint
	} else {
		text += msgHelpHint
	}
	h.send(newPlainMessage(chatID, text))
}

// handleQuiz starts a fresh quiz session and sends the first question.
func (h *Handler) handleQuiz(ctx context.Context, chatID, userID int64) {
	session, err := h.quizService.Start(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNoQuestions) {
			h.send(newPlainMessage(chatID, msgNoQuizzes))
			return
		}
		h.logger.Error("failed to start quiz",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}

	question, _ := session.Current()
	h.send(newPlainMessage(chatID, formatQuestion(question)))
}

// handleLeaderboard renders the score table in descending order.
func (h *Handler) handleLeaderboard(ctx context.Context, chatID int64) {
	entries, err := h.quizService.Leaderboard(ctx)
	if err != nil {
		h.logger.Error("failed to load leaderboard", zap.Error(err))
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}

	if len(entries) == 0 {
		h.send(newPlainMessage(chatID, msgNoScores))
		return
	}

	h.send(newPlainMessage(chatID, formatLeaderboard(entries)))
}

// handleText routes free text: admin question submissions first, then
// quiz answers. Text from a user with no active session is ignored.
func (h *Handler) handleText(ctx context.Context, chatID int64, from *tgbotapi.User, text string) {
	text = strings.TrimSpace(text)

	// The ingestion check runs before the session check, so a malformed
	// admin submission is never scored as a quiz answer.
	if h.isAdmin(from.ID) && strings.Contains(text, service.IngestMarker) {
		h.handleIngestion(ctx, chatID, from.ID, text)
		return
	}

	result, err := h.quizService.Submit(ctx, from.ID, displayName(from), text)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			return
		}
		h.logger.Error("failed to submit answer",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}

	h.send(newPlainMessage(chatID, formatAnswerResult(result)))
}

func (h *Handler) handleIngestion(ctx context.Context, chatID, userID int64, block string) {
	if err := h.quizService.AddQuestion(ctx, block); err != nil {
		if errors.Is(err, service.ErrInvalidFormat) {
			h.logger.Debug("rejected question submission",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			h.send(newPlainMessage(chatID, msgBadQuestionFormat))
			return
		}
		h.logger.Error("failed to store question",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.send(newPlainMessage(chatID, msgInternalError))
		return
	}

	h.send(newPlainMessage(chatID, msgQuestionAdded))
}
