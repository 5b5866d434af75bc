package providers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"prepwise-backend/internal/models"
)

func TestNewGeminiProvider_EmptyKeyStartsUnconfigured(t *testing.T) {
	p, err := NewGeminiProvider(context.Background(), "")
	if err != nil {
		t.Fatalf("Expected startup to succeed without a key, got %v", err)
	}
	defer p.Close()

	_, err = p.Complete(context.Background(), []models.Message{
		{Role: models.RoleUser, Content: "hi"},
	}, "gemini-1.0-pro")
	if err == nil {
		t.Fatal("Expected request-time error without a key")
	}

	var provErr *Error
	if !errors.As(err, &provErr) {
		t.Fatalf("Expected providers.Error, got %T", err)
	}
	if !strings.Contains(provErr.Message, "API key") {
		t.Errorf("Expected a credential-classifiable message, got %q", provErr.Message)
	}
}

func TestLastMessageContent(t *testing.T) {
	tests := []struct {
		name     string
		messages []models.Message
		expected string
	}{
		{"empty sequence", nil, ""},
		{"single message", []models.Message{{Role: models.RoleUser, Content: "hi"}}, "hi"},
		{
			"multi-turn context and system prompt are dropped",
			[]models.Message{
				{Role: models.RoleSystem, Content: "You are Snoop Dogg."},
				{Role: models.RoleUser, Content: "first question"},
				{Role: models.RoleAssistant, Content: "first answer"},
				{Role: models.RoleUser, Content: "hi"},
			},
			"hi",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := lastMessageContent(tc.messages)
			if got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}
