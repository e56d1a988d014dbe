package repository

import (
	"context"
	"fmt"
	"strings"

	"gradeyour401k/internal/domain"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	GradeCommentary(ctx context.Context, holdings []domain.Holding, breakdown domain.GradeBreakdown) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const commentaryPrompt = `
You are reviewing a 401(k) allocation for a retail investor. You will receive their holdings as
"SYMBOL weight%" lines, the risk profile they picked, the grade they received on a 1 to 5 scale and the
adjustments that produced it.

Write at most four plain sentences explaining the grade. Mention the largest adjustment first. Do not
recommend specific funds outside the holdings list and do not give tax advice.
`

func commentaryInput(holdings []domain.Holding, breakdown domain.GradeBreakdown) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("profile: %s\n", breakdown.Profile))
	sb.WriteString(fmt.Sprintf("grade: %.1f\n", breakdown.Grade))
	sb.WriteString("holdings:\n")
	for _, h := range holdings {
		sb.WriteString(fmt.Sprintf("%s %.2f%%\n", h.Symbol, h.Weight))
	}
	sb.WriteString("adjustments:\n")
	for _, a := range breakdown.Adjustments {
		sb.WriteString(fmt.Sprintf("%s %+.2f\n", a.Name, a.Delta))
	}
	return sb.String()
}

func (h gptRepositoryHandler) GradeCommentary(ctx context.Context, holdings []domain.Holding, breakdown domain.GradeBreakdown) (string, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: commentaryPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: commentaryInput(holdings, breakdown),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get grade commentary: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return strings.TrimSpace(res.Choices[0].Message.Content), nil
}
