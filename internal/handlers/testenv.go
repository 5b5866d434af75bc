package handlers

import (
	"net/http"

	"prepwise-backend/internal/config"
)

// TestEnvHandler reports environment diagnostic flags. It confirms key
// presence only and never echoes key material.
type TestEnvHandler struct {
	cfg *config.Config
}

func NewTestEnvHandler(cfg *config.Config) *TestEnvHandler {
	return &TestEnvHandler{cfg: cfg}
}

func (h *TestEnvHandler) TestEnv(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"environment":   h.cfg.Env,
		"isDevelopment": h.cfg.Env == "development",
		"hasOpenAIKey":  h.cfg.OpenAIAPIKey != "",
		"hasGoogleKey":  h.cfg.GoogleAPIKey != "",
		"appUrl":        h.cfg.AppURL,
	})
}
