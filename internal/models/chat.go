package models

// Message roles accepted in a conversation.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single entry in a conversation history. Order is significant;
// the full sequence is what gets sent to a provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// PromptOptions selects a registered prompt template and the values to fill
// its placeholders with.
type PromptOptions struct {
	Type          string            `json:"type"`
	Template      string            `json:"template"`
	Variables     map[string]string `json:"variables,omitempty"`
	SystemMessage string            `json:"systemMessage,omitempty"`
}

// ChatRequest is the payload sent to the chat endpoint. Exactly one of
// Messages/PromptOptions must be supplied meaningfully.
type ChatRequest struct {
	Messages       []Message      `json:"messages,omitempty"`
	PromptOptions  *PromptOptions `json:"promptOptions,omitempty"`
	ModelID        string         `json:"modelId,omitempty"`
	PersonaID      string         `json:"personaId,omitempty"`
	JobDescription string         `json:"jobDescription,omitempty"`
}

// ChatResponse is the assistant reply returned to the client.
type ChatResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
