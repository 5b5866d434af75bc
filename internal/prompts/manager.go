package prompts

import (
	"fmt"
	"strings"

	"prepwise-backend/internal/models"
)

// DefaultSystemMessage is used when PromptOptions carries no system message.
const DefaultSystemMessage = "You are a helpful AI assistant."

// TemplateNotFoundError reports a (type, template) pair with no registered
// template.
type TemplateNotFoundError struct {
	Type     string
	Template string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template '%s' not found for type '%s'", e.Template, e.Type)
}

// Manager resolves templates from a Store and assembles prompts.
type Manager struct {
	store *Store
}

func NewManager(store *Store) *Manager {
	return &Manager{store: store}
}

// ListTemplates returns the template names registered for a type.
func (m *Manager) ListTemplates(promptType string) []string {
	return m.store.List(promptType)
}

// GetTemplate returns the raw template text for (type, name).
func (m *Manager) GetTemplate(promptType, name string) (string, bool) {
	return m.store.Get(promptType, name)
}

// GeneratePrompt resolves the template named by the options, fills its
// placeholders, and returns the two-message system+user prompt.
func (m *Manager) GeneratePrompt(opts models.PromptOptions) ([]models.Message, error) {
	template, ok := m.store.Get(opts.Type, opts.Template)
	if !ok {
		return nil, &TemplateNotFoundError{Type: opts.Type, Template: opts.Template}
	}

	systemMessage := opts.SystemMessage
	if systemMessage == "" {
		systemMessage = DefaultSystemMessage
	}

	return []models.Message{
		{Role: models.RoleSystem, Content: systemMessage},
		{Role: models.RoleUser, Content: Fill(template, opts.Variables)},
	}, nil
}

// Fill substitutes variables into a template. For each key only the first
// occurrence of {key} is replaced; later occurrences and placeholders with
// no matching key stay literal. This single-shot behavior is a compatibility
// contract with existing clients; use FillAll for exhaustive replacement.
func Fill(template string, variables map[string]string) string {
	filled := template
	for key, value := range variables {
		filled = strings.Replace(filled, "{"+key+"}", value, 1)
	}
	return filled
}

// FillAll substitutes every occurrence of each {key} placeholder.
func FillAll(template string, variables map[string]string) string {
	filled := template
	for key, value := range variables {
		filled = strings.ReplaceAll(filled, "{"+key+"}", value)
	}
	return filled
}
