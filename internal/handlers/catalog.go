package handlers

import (
	"net/http"

	"prepwise-backend/internal/catalog"
	"prepwise-backend/internal/personas"
	"prepwise-backend/internal/prompts"
)

// CatalogHandler serves the read-only registries: models, personas, and
// prompt template names. The selector UIs are the only consumers.
type CatalogHandler struct {
	models   *catalog.Catalog
	personas *personas.Registry
	prompts  *prompts.Manager
}

func NewCatalogHandler(models *catalog.Catalog, personaRegistry *personas.Registry, promptManager *prompts.Manager) *CatalogHandler {
	return &CatalogHandler{
		models:   models,
		personas: personaRegistry,
		prompts:  promptManager,
	}
}

func (h *CatalogHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"models": h.models.List(),
	})
}

func (h *CatalogHandler) ListPersonas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"personas": h.personas.List(),
	})
}

func (h *CatalogHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	promptType := r.URL.Query().Get("type")
	if promptType != "" {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"type":      promptType,
			"templates": h.prompts.ListTemplates(promptType),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{
		prompts.TypeZeroShot:       h.prompts.ListTemplates(prompts.TypeZeroShot),
		prompts.TypeFewShot:        h.prompts.ListTemplates(prompts.TypeFewShot),
		prompts.TypeChainOfThought: h.prompts.ListTemplates(prompts.TypeChainOfThought),
	})
}
