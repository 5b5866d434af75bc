package services

import (
	"context"
	"errors"
	"strings"

	"prepwise-backend/internal/models"
	"prepwise-backend/internal/personas"
	"prepwise-backend/internal/prompts"
	"prepwise-backend/internal/providers"
)

// geminiModelPrefix routes a modelId to the Gemini adapter. Everything else
// goes to OpenAI, regardless of what the model catalog declares; existing
// clients rely on this prefix rule.
const geminiModelPrefix = "gemini"

// ChatService is the gateway: it validates a request, resolves the final
// message sequence, picks a provider, and classifies the outcome.
type ChatService struct {
	prompts      *prompts.Manager
	personas     *personas.Registry
	openai       providers.Provider
	gemini       providers.Provider
	defaultModel string
}

func NewChatService(
	promptManager *prompts.Manager,
	personaRegistry *personas.Registry,
	openai providers.Provider,
	gemini providers.Provider,
	defaultModel string,
) *ChatService {
	return &ChatService{
		prompts:      promptManager,
		personas:     personaRegistry,
		openai:       openai,
		gemini:       gemini,
		defaultModel: defaultModel,
	}
}

// Chat runs the request pipeline: validate, resolve messages, apply persona,
// select provider, dispatch, normalize.
func (s *ChatService) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	if len(req.Messages) == 0 && req.PromptOptions == nil {
		return models.ChatResponse{}, &ValidationError{Message: "Either messages or promptOptions are required"}
	}

	// Supplied messages must be well-formed even when promptOptions ends up
	// driving the resolution.
	for _, msg := range req.Messages {
		if msg.Role == "" || msg.Content == "" {
			return models.ChatResponse{}, &ValidationError{Message: "Each message must have a role and content"}
		}
	}

	finalMessages, err := s.resolveMessages(req)
	if err != nil {
		return models.ChatResponse{}, err
	}

	modelID := req.ModelID
	if modelID == "" {
		modelID = s.defaultModel
	}

	content, err := s.providerFor(modelID).Complete(ctx, finalMessages, modelID)
	if err != nil {
		return models.ChatResponse{}, classifyProviderError(err)
	}

	return models.ChatResponse{Role: models.RoleAssistant, Content: content}, nil
}

func (s *ChatService) resolveMessages(req models.ChatRequest) ([]models.Message, error) {
	if req.PromptOptions != nil {
		messages, err := s.prompts.GeneratePrompt(*req.PromptOptions)
		if err != nil {
			var notFound *prompts.TemplateNotFoundError
			if errors.As(err, &notFound) {
				return nil, &ValidationError{Message: err.Error()}
			}
			return nil, err
		}
		return messages, nil
	}

	// Raw conversations get the persona's system prompt swapped in. The
	// template path keeps the system message the options asked for.
	personaID := req.PersonaID
	if personaID == "" {
		personaID = personas.DefaultPersonaID
	}
	return s.personas.Apply(req.Messages, personaID, req.JobDescription), nil
}

func (s *ChatService) providerFor(modelID string) providers.Provider {
	if strings.HasPrefix(modelID, geminiModelPrefix) {
		return s.gemini
	}
	return s.openai
}

// classifyProviderError sorts a raw provider failure into the error
// taxonomy by substring. The matching order matters: credential errors
// first, then throttling, then quota/billing exhaustion.
func classifyProviderError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "API key"):
		return &AuthError{Message: "Invalid API key"}
	case strings.Contains(msg, "rate limit"):
		return &RateLimitError{Message: "Rate limit exceeded"}
	case strings.Contains(msg, "quota") || strings.Contains(msg, "billing"):
		return &QuotaError{
			Message: "API quota exceeded",
			Hint:    "Check your plan and billing details",
		}
	default:
		return &InternalError{Message: "Internal server error"}
	}
}
