// messages.go contains reply templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sabreena6/jkssb-quiz-bot/internal/domain/entities"
	"github.com/sabreena6/jkssb-quiz-bot/internal/service"
)

const (
	msgWelcome = "Welcome to the JKSSB Toppers Quiz Bot!\n" +
		"Practice JKSSB quiz questions created by toppers.\n" +
		"Type /quiz to begin a quiz.\n" +
		"Type /leaderboard to see top scorers."
	msgAdminHint = "\n\nYou are an admin.\n" +
		"Send your questions in this format:\n" +
		"Question?\n" +
		"A. Option A\n" +
		"B. Option B\n" +
		"C. Option C\n" +
		"D. Option D\n" +
		"Answer: A"
	msgHelpHint = "\n\nFor help, type /help"
	msgHelp     = "/start - Show welcome message\n" +
		"/quiz - Start saved quiz\n" +
		"/leaderboard - Show top scorers"

	msgNoQuizzes         = "No quizzes available."
	msgCorrect           = "Correct!"
	msgWrongFmt          = "Wrong. Correct: %s"
	msgFinishedFmt       = "Quiz finished! Your score: %d"
	msgQuestionAdded     = "Question added!"
	msgBadQuestionFormat = "Error adding question. Please follow the correct format."
	msgNoScores          = "No scores yet."
	msgLeaderboardHeader = "Leaderboard:"
	msgInternalError     = "Something went wrong. Please try again later."
	msgUnknownCommand    = "Unknown command. Type /help to see available commands."
)

// newPlainMessage creates a plain text message without parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// formatQuestion renders a question with its four options.
func formatQuestion(q entities.Question) string {
	var sb strings.Builder
	sb.WriteString(q.Text)
	for _, label := range entities.OptionLabels {
		sb.WriteString(fmt.Sprintf("\n%s. %s", label, q.Option(label)))
	}
	return sb.String()
}

// formatAnswerResult renders the verdict for one answer, followed by
// either the next question or the finish line.
func formatAnswerResult(r service.AnswerResult) string {
	var sb strings.Builder
	if r.Correct {
		sb.WriteString(msgCorrect)
	} else {
		sb.WriteString(fmt.Sprintf(msgWrongFmt, r.CorrectLabel))
	}

	if r.Finished {
		sb.WriteString("\n\n")
		sb.WriteString(fmt.Sprintf(msgFinishedFmt, r.FinalScore))
	} else if r.Next != nil {
		sb.WriteString("\n\n")
		sb.WriteString(formatQuestion(*r.Next))
	}

	return sb.String()
}

// formatLeaderboard renders "name: score" lines under a header.
func formatLeaderboard(entries []service.ScoreEntry) string {
	var sb strings.Builder
	sb.WriteString(msgLeaderboardHeader)
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("\n%s: %d", e.Name, e.Score))
	}
	return sb.String()
}
