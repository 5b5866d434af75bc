// Package catalog holds the declarative model catalog served to clients.
// Request-time provider routing does not consult it; it only describes what
// the UI can offer.
package catalog

import "prepwise-backend/internal/models"

// Catalog is an immutable list of selectable models.
type Catalog struct {
	models []models.ModelConfig
	byID   map[string]models.ModelConfig
}

// New returns the built-in model catalog.
func New() *Catalog {
	c := &Catalog{byID: make(map[string]models.ModelConfig)}
	for _, m := range availableModels {
		c.models = append(c.models, m)
		c.byID[m.ID] = m
	}
	return c
}

// List returns every catalog entry in declaration order.
func (c *Catalog) List() []models.ModelConfig {
	out := make([]models.ModelConfig, len(c.models))
	copy(out, c.models)
	return out
}

// Get looks up a catalog entry by model id.
func (c *Catalog) Get(id string) (models.ModelConfig, bool) {
	m, ok := c.byID[id]
	return m, ok
}

var availableModels = []models.ModelConfig{
	{
		ID:          "gpt-3.5-turbo",
		Name:        "GPT-3.5 Turbo",
		Provider:    models.ProviderOpenAI,
		Description: "Fast and efficient for most tasks",
	},
	{
		ID:          "gpt-4",
		Name:        "GPT-4",
		Provider:    models.ProviderOpenAI,
		Description: "Most capable model, best for complex tasks",
	},
	{
		ID:          "gemini-1.0-pro",
		Name:        "Gemini Pro",
		Provider:    models.ProviderGemini,
		Description: "Google's advanced AI model",
	},
}
