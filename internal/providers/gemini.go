package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"prepwise-backend/internal/models"
)

// GeminiProvider talks to Google's Gemini API. It forwards only the content
// of the final message as a single prompt: multi-turn context and system
// instructions are dropped on this path. Known limitation, kept for parity
// with existing client expectations.
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider builds the adapter. An empty key is not a startup
// failure: the server still serves every OpenAI-backed endpoint, and
// Gemini-routed requests fail at call time instead.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return &GeminiProvider{}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

func (p *GeminiProvider) Close() {
	if p.client != nil {
		p.client.Close()
	}
}

func (p *GeminiProvider) Complete(ctx context.Context, messages []models.Message, modelID string) (string, error) {
	if p.client == nil {
		return "", &Error{Message: "Google API key is not configured"}
	}

	prompt := lastMessageContent(messages)
	if prompt == "" {
		return "", &Error{Message: "no message content to send"}
	}

	model := p.client.GenerativeModel(modelID)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &Error{Message: err.Error()}
	}

	text := extractText(resp)
	if text == "" {
		return "", &Error{Message: "gemini returned empty response"}
	}
	return text, nil
}

// lastMessageContent picks the final entry of the conversation, which is all
// this backend receives.
func lastMessageContent(messages []models.Message) string {
	if len(messages) == 0 {
		return ""
	}
	return messages[len(messages)-1].Content
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
