package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prepwise-backend/internal/catalog"
	"prepwise-backend/internal/config"
	"prepwise-backend/internal/handlers"
	"prepwise-backend/internal/personas"
	"prepwise-backend/internal/prompts"
	"prepwise-backend/internal/providers"
	"prepwise-backend/internal/router"
	"prepwise-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Prepwise Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")
	if cfg.OpenAIAPIKey == "" {
		log.Println("⚠ OPENAI_API_KEY is not set; OpenAI-backed endpoints will fail")
	}
	if cfg.GoogleAPIKey == "" {
		log.Println("⚠ GOOGLE_API_KEY is not set; Gemini-backed requests will fail")
	}

	// ──── Step 2: Build Read-Only Registries ────
	templateStore := prompts.NewStore()
	promptManager := prompts.NewManager(templateStore)
	personaRegistry := personas.NewRegistry()
	modelCatalog := catalog.New()
	log.Println("✓ Prompt, persona, and model catalogs loaded")

	// ──── Step 3: Initialize Provider Adapters ────
	openaiProvider := providers.NewOpenAIProvider(cfg.OpenAIAPIKey)

	geminiProvider, err := providers.NewGeminiProvider(context.Background(), cfg.GoogleAPIKey)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiProvider.Close()
	log.Println("✓ Provider adapters initialized")

	// ──── Step 4: Initialize Services ────
	chatService := services.NewChatService(promptManager, personaRegistry, openaiProvider, geminiProvider, cfg.ChatModel)
	interviewService := services.NewInterviewService(openaiProvider, cfg.InterviewModel)

	// ──── Step 5: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(chatService)
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	catalogHandler := handlers.NewCatalogHandler(modelCatalog, personaRegistry, promptManager)
	testEnvHandler := handlers.NewTestEnvHandler(cfg)

	// ──── Step 6: Start HTTP Server ────
	r := router.New(
		chatHandler,
		interviewHandler,
		catalogHandler,
		testEnvHandler,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Prepwise Backend ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
