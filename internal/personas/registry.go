package personas

import (
	"strings"

	"prepwise-backend/internal/models"
	"prepwise-backend/internal/prompts"
)

// DefaultPersonaID is the persona applied when a request names none.
const DefaultPersonaID = "default"

// Registry is a read-only catalog of personas, built once at startup.
type Registry struct {
	byID  map[string]models.Persona
	order []string
}

// NewRegistry returns the built-in persona catalog.
func NewRegistry() *Registry {
	r := &Registry{byID: make(map[string]models.Persona)}
	for _, p := range availablePersonas {
		if _, exists := r.byID[p.ID]; !exists {
			r.order = append(r.order, p.ID)
		}
		r.byID[p.ID] = p
	}
	return r
}

// Get looks up a persona by id.
func (r *Registry) Get(id string) (models.Persona, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// List returns all personas in registration order.
func (r *Registry) List() []models.Persona {
	out := make([]models.Persona, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// ResolveSystemPrompt builds the persona's system prompt with the
// {jobDescription} token filled in. A non-empty jobDescription becomes a
// descriptive clause; an empty one erases the token. An unknown persona id
// means "no override": the second return is false and callers must leave
// their messages untouched.
func (r *Registry) ResolveSystemPrompt(personaID, jobDescription string) (string, bool) {
	persona, ok := r.byID[personaID]
	if !ok {
		return "", false
	}

	clause := ""
	if jobDescription != "" {
		clause = "You are specifically helping with this job description: " + jobDescription
	}

	resolved := prompts.Fill(persona.SystemPromptTemplate, map[string]string{
		"jobDescription": clause,
	})
	// An empty clause leaves whitespace around the erased token behind.
	return strings.TrimSpace(resolved), true
}

// Apply replaces the content of every system-role entry with the resolved
// persona prompt. Non-system entries pass through unchanged, and a sequence
// with no system entry gets none added.
func (r *Registry) Apply(messages []models.Message, personaID, jobDescription string) []models.Message {
	systemPrompt, ok := r.ResolveSystemPrompt(personaID, jobDescription)
	if !ok {
		return messages
	}

	out := make([]models.Message, len(messages))
	for i, msg := range messages {
		if msg.Role == models.RoleSystem {
			msg.Content = systemPrompt
		}
		out[i] = msg
	}
	return out
}

var availablePersonas = []models.Persona{
	{
		ID:          "default",
		Name:        "Default Assistant",
		Description: "Standard helpful AI assistant",
		SystemPromptTemplate: `You are a helpful AI assistant. {jobDescription}`,
	},
	{
		ID:          "snoop-dogg",
		Name:        "Snoop Dogg",
		Description: "Interview guide with Snoop Dogg's style",
		SystemPromptTemplate: `You are Snoop Dogg, the legendary rapper and entrepreneur. When guiding through interviews:
- Use Snoop's signature slang and expressions like "fo shizzle", "izzle", and "dizzle"
- Keep it real and laid back, but professional
- Add some of Snoop's wisdom and business acumen
- Maintain a positive and encouraging tone
- Use Snoop's characteristic way of speaking while keeping the advice valuable
Remember to stay in character but ensure the interview guidance is actually helpful!
{jobDescription}`,
	},
	{
		ID:          "paris-hilton",
		Name:        "Paris Hilton",
		Description: "Interview guide with Paris Hilton's style",
		SystemPromptTemplate: `You are Paris Hilton, the iconic socialite and businesswoman. When guiding through interviews:
- Use Paris's signature phrases like "That's hot!", "Loves it!", and "That's so fetch!"
- Keep it glamorous and positive
- Share insights from your business experience
- Maintain a bubbly and enthusiastic tone
- Use Paris's characteristic way of speaking while providing valuable advice
Remember to stay in character but ensure the interview guidance is actually helpful!
{jobDescription}`,
	},
}
