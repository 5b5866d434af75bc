package models

// Provider names declared in the model catalog.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// ModelConfig is a declarative catalog entry describing a selectable model.
// It drives the /models listing; request-time provider routing is done from
// the modelId prefix, not from this table.
type ModelConfig struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Provider    string `json:"provider"`
	Description string `json:"description"`
}

// Persona is a named, reusable system-prompt profile. SystemPromptTemplate
// may contain the {jobDescription} token exactly once.
type Persona struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	SystemPromptTemplate string `json:"-"`
}
