package providers

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"prepwise-backend/internal/models"
)

const (
	chatTemperature = 0.7
	chatMaxTokens   = 1000
)

// OpenAIProvider forwards the full message sequence verbatim to an
// OpenAI-style chat completion API.
type OpenAIProvider struct {
	client *openai.Client
	apiKey string
}

func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		apiKey: apiKey,
	}
}

// Configured reports whether a credential was supplied at startup.
func (p *OpenAIProvider) Configured() bool {
	return p.apiKey != ""
}

func (p *OpenAIProvider) Complete(ctx context.Context, messages []models.Message, modelID string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       modelID,
		Messages:    toOpenAIMessages(messages),
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		return "", &Error{Message: err.Error()}
	}
	if len(resp.Choices) == 0 {
		return "", &Error{Message: "openai returned no choices"}
	}
	return resp.Choices[0].Message.Content, nil
}

// CompletePair sends a fixed system+user pair, as the interview endpoints
// do. maxTokens <= 0 means no cap; jsonMode requests the structured-output
// format that must return parseable JSON.
func (p *OpenAIProvider) CompletePair(ctx context.Context, system, user, modelID string, maxTokens int, jsonMode bool) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: modelID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: chatTemperature,
	}
	if maxTokens > 0 {
		req.MaxTokens = maxTokens
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", &Error{Message: err.Error()}
	}
	if len(resp.Choices) == 0 {
		return "", &Error{Message: "openai returned no choices"}
	}
	return resp.Choices[0].Message.Content, nil
}

func toOpenAIMessages(messages []models.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		out[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}
	return out
}
