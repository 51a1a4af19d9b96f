package openrouter

import (
	"context"
	"encoding/base64"
	"fmt"

	"yuki/internal/application/port/output"
	"yuki/internal/domain/entity"

	"github.com/sashabaranov/go-openai"
)

var _ output.OraclePort = (*OpenRouterAdapter)(nil)

// OpenRouterAdapter speaks the OpenAI chat completion dialect against
// OpenRouter. Responses come back as plain text; the agent's parser
// extracts the tagged sections itself, so no tool-calling protocol is
// involved.
type OpenRouterAdapter struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      output.LoggerPort
}

type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
	Logger      output.LoggerPort
}

func DefaultConfig(apiKey, model string) Config {
	return Config{
		APIKey:      apiKey,
		Model:       model,
		BaseURL:     "https://openrouter.ai/api/v1",
		Temperature: 0.2,
	}
}

func NewOpenRouterAdapter(cfg Config) *OpenRouterAdapter {
	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL

	return &OpenRouterAdapter{
		client:      openai.NewClientWithConfig(config),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		logger:      cfg.Logger,
	}
}

func (a *OpenRouterAdapter) Converse(ctx context.Context, messages []entity.Message) (string, error) {
	converted := convertMessages(messages)

	if a.logger != nil {
		a.logger.Debug("creating chat completion",
			"model", a.model,
			"messages", len(converted),
		)
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    converted,
		Temperature: a.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

func convertMessages(messages []entity.Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		oaiMsg := openai.ChatCompletionMessage{
			Role: string(msg.Role),
		}

		if len(msg.Image) > 0 {
			dataURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(msg.Image)
			oaiMsg.MultiContent = []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: msg.Content},
				{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL:    dataURI,
						Detail: openai.ImageURLDetailAuto,
					},
				},
			}
		} else {
			oaiMsg.Content = msg.Content
		}

		result = append(result, oaiMsg)
	}
	return result
}
