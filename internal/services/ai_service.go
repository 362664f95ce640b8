package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sashabaranov/go-openai"
	"github.com/vidyapath/planner-api/internal/constants"
	"github.com/vidyapath/planner-api/internal/utils"
)

var (
	ErrAINotConfigured = errors.New("AI service is not configured")
	ErrAIBadQuiz       = errors.New("AI failed to format the quiz correctly")
	ErrTextTooShort    = errors.New("text is too short to work with")
)

// AIService wraps the OpenAI chat completion API for summarization and quiz
// generation. External calls go through a bounded retry policy.
type AIService struct {
	client *openai.Client
	retry  utils.RetryPolicy
}

// QuizQuestion is one multiple-choice question. Answer repeats the correct
// option verbatim, which is what the quiz UI matches against.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// NewAIService creates a new AIService.
func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
		retry:  utils.DefaultRetryPolicy,
	}
}

// Summarize condenses study text into a short plain-language summary.
func (s *AIService) Summarize(ctx context.Context, text string) (string, error) {
	if s.client == nil {
		return "", ErrAINotConfigured
	}
	text = strings.TrimSpace(text)
	if len(text) < 50 {
		return "", ErrTextTooShort
	}

	prompt := fmt.Sprintf(`Summarize the following study material for a student.
Keep it concise (at most 200 words), plain language, and cover only what the text actually says.

TEXT:
%s`, truncate(text, constants.MaxPromptChars))

	content, err := s.complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(content), nil
}

// GenerateQuiz builds count multiple-choice questions from study text.
func (s *AIService) GenerateQuiz(ctx context.Context, text string, count int) ([]QuizQuestion, error) {
	if s.client == nil {
		return nil, ErrAINotConfigured
	}
	text = strings.TrimSpace(text)
	if len(text) < 50 {
		return nil, ErrTextTooShort
	}
	if count < 1 {
		count = constants.DefaultQuizQuestions
	}
	if count > constants.MaxQuizQuestions {
		count = constants.MaxQuizQuestions
	}

	prompt := fmt.Sprintf(`You are an expert educational AI. Generate a quiz based on the text below.

STRICT REQUIREMENTS:
1. Return ONLY a raw JSON array. Do not use Markdown.
2. Create exactly %d questions.
3. Follow this JSON structure:
[
  {
    "question": "Question text here?",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "answer": "Option A"
  }
]

TEXT TO ANALYZE:
%s`, count, truncate(text, constants.MaxPromptChars))

	content, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	payload, err := utils.ExtractJSONArray(content)
	if err != nil {
		return nil, ErrAIBadQuiz
	}

	var quiz []QuizQuestion
	if err := json.Unmarshal([]byte(payload), &quiz); err != nil {
		return nil, ErrAIBadQuiz
	}
	if len(quiz) == 0 {
		return nil, ErrAIBadQuiz
	}

	return quiz, nil
}

func (s *AIService) complete(ctx context.Context, prompt string) (string, error) {
	var content string

	err := utils.Retry(ctx, s.retry, func(ctx context.Context) error {
		resp, err := s.client.CreateChatCompletion(
			ctx,
			openai.ChatCompletionRequest{
				Model: openai.GPT4oMini,
				Messages: []openai.ChatCompletionMessage{
					{
						Role:    openai.ChatMessageRoleUser,
						Content: prompt,
					},
				},
				Temperature: 0.2,
			},
		)
		if err != nil {
			return fmt.Errorf("OpenAI API error: %w", err)
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("no response from OpenAI")
		}

		content = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", err
	}

	return content, nil
}

// truncate caps text at max bytes without cutting through a multi-byte rune.
func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
