package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sabreena6/jkssb-quiz-bot/internal/domain/entities"
)

// IngestMarker identifies a free-text message as an admin question
// submission. The dispatch layer checks for it before answer scoring.
const IngestMarker = "Answer:"

// ErrInvalidFormat is returned for a malformed question submission.
// No partial write ever happens on a parse failure.
var ErrInvalidFormat = errors.New("question block has invalid format")

// ParseQuestion converts a raw admin submission into a question.
// The expected shape is exactly six non-empty lines:
//
//	Question text?
//	A. first option
//	B. second option
//	C. third option
//	D. fourth option
//	Answer: B
//
// The answer label is uppercased and must be one of A-D.
func ParseQuestion(block string) (entities.Question, error) {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != 6 {
		return entities.Question{}, fmt.Errorf("%w: expected 6 lines, got %d", ErrInvalidFormat, len(lines))
	}

	options := make([]string, 0, len(entities.OptionLabels))
	for i, label := range entities.OptionLabels {
		marker := label + "."
		line := lines[i+1]
		if !strings.HasPrefix(line, marker) {
			return entities.Question{}, fmt.Errorf("%w: line %d must start with %q", ErrInvalidFormat, i+2, marker)
		}
		option := strings.TrimSpace(strings.TrimPrefix(line, marker))
		if option == "" {
			return entities.Question{}, fmt.Errorf("%w: option %s is empty", ErrInvalidFormat, label)
		}
		options = append(options, option)
	}

	answer, err := parseAnswerLine(lines[5])
	if err != nil {
		return entities.Question{}, err
	}

	return entities.Question{
		Text:    lines[0],
		OptionA: options[0],
		OptionB: options[1],
		OptionC: options[2],
		OptionD: options[3],
		Answer:  answer,
	}, nil
}

func parseAnswerLine(line string) (string, error) {
	before, after, found := strings.Cut(line, ":")
	if !found || strings.TrimSpace(before) != "Answer" {
		return "", fmt.Errorf("%w: last line must be \"Answer: <label>\"", ErrInvalidFormat)
	}

	answer := strings.ToUpper(strings.TrimSpace(after))
	for _, label := range entities.OptionLabels {
		if answer == label {
			return answer, nil
		}
	}

	return "", fmt.Errorf("%w: answer %q is not one of A-D", ErrInvalidFormat, answer)
}
