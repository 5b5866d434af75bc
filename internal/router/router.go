package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"prepwise-backend/internal/handlers"
	"prepwise-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	interviewHandler *handlers.InterviewHandler,
	catalogHandler *handlers.CatalogHandler,
	testEnvHandler *handlers.TestEnvHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Chat ────
	r.Post("/chat", chatHandler.Chat)

	// ──── Interview ────
	r.Route("/interview", func(r chi.Router) {
		r.Post("/generate-question", interviewHandler.GenerateQuestion)
		r.Post("/evaluate-answer", interviewHandler.EvaluateAnswer)
	})

	// ──── Catalogs (read-only) ────
	r.Get("/models", catalogHandler.ListModels)
	r.Get("/personas", catalogHandler.ListPersonas)
	r.Get("/templates", catalogHandler.ListTemplates)

	// ──── Diagnostics ────
	r.Get("/test-env", testEnvHandler.TestEnv)

	return r
}
