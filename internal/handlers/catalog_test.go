package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"prepwise-backend/internal/catalog"
	"prepwise-backend/internal/config"
	"prepwise-backend/internal/models"
	"prepwise-backend/internal/personas"
	"prepwise-backend/internal/prompts"
)

func newCatalogHandler() *CatalogHandler {
	return NewCatalogHandler(catalog.New(), personas.NewRegistry(), prompts.NewManager(prompts.NewStore()))
}

func TestListModels(t *testing.T) {
	h := newCatalogHandler()

	rr := httptest.NewRecorder()
	h.ListModels(rr, httptest.NewRequest(http.MethodGet, "/models", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var body struct {
		Models []models.ModelConfig `json:"models"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(body.Models) != 3 {
		t.Fatalf("Expected 3 models, got %d", len(body.Models))
	}
	if body.Models[2].ID != "gemini-1.0-pro" || body.Models[2].Provider != models.ProviderGemini {
		t.Errorf("Unexpected catalog entry: %+v", body.Models[2])
	}
}

func TestListPersonas_DoesNotExposeSystemPrompts(t *testing.T) {
	h := newCatalogHandler()

	rr := httptest.NewRecorder()
	h.ListPersonas(rr, httptest.NewRequest(http.MethodGet, "/personas", nil))

	var body struct {
		Personas []map[string]interface{} `json:"personas"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(body.Personas) != 3 {
		t.Fatalf("Expected 3 personas, got %d", len(body.Personas))
	}
	for _, p := range body.Personas {
		for key := range p {
			if key == "systemPromptTemplate" || key == "SystemPromptTemplate" {
				t.Errorf("Persona listing must not expose the system prompt, got key %q", key)
			}
		}
	}
}

func TestListTemplates_ByType(t *testing.T) {
	h := newCatalogHandler()

	rr := httptest.NewRecorder()
	h.ListTemplates(rr, httptest.NewRequest(http.MethodGet, "/templates?type=zeroShot", nil))

	var body struct {
		Type      string   `json:"type"`
		Templates []string `json:"templates"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Type != "zeroShot" || len(body.Templates) != 3 {
		t.Errorf("Unexpected response: %+v", body)
	}
}

func TestListTemplates_UnknownTypeIsEmptyNotError(t *testing.T) {
	h := newCatalogHandler()

	rr := httptest.NewRecorder()
	h.ListTemplates(rr, httptest.NewRequest(http.MethodGet, "/templates?type=instructional", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var body struct {
		Templates []string `json:"templates"`
	}
	json.NewDecoder(rr.Body).Decode(&body)
	if len(body.Templates) != 0 {
		t.Errorf("Expected empty template list, got %v", body.Templates)
	}
}

func TestTestEnvHandler(t *testing.T) {
	h := NewTestEnvHandler(&config.Config{
		Env:          "development",
		OpenAIAPIKey: "sk-test",
		AppURL:       "http://localhost:3000",
	})

	rr := httptest.NewRecorder()
	h.TestEnv(rr, httptest.NewRequest(http.MethodGet, "/test-env", nil))

	var body map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if body["isDevelopment"] != true {
		t.Error("Expected isDevelopment=true")
	}
	if body["hasOpenAIKey"] != true {
		t.Error("Expected hasOpenAIKey=true")
	}
	if body["hasGoogleKey"] != false {
		t.Error("Expected hasGoogleKey=false")
	}
	for key, val := range body {
		if s, ok := val.(string); ok && s == "sk-test" {
			t.Errorf("Diagnostic must never echo key material, found in %q", key)
		}
	}
}
