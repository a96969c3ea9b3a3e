package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"exam-tutor-backend/internal/config"
	"exam-tutor-backend/internal/handlers"
	"exam-tutor-backend/internal/repository"
	"exam-tutor-backend/internal/router"
	"exam-tutor-backend/internal/services"
	"exam-tutor-backend/internal/telemetry"
)

func main() {
	log.Println("🚀 Starting Exam Tutor Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Logging & Telemetry ────
	logCloser, err := telemetry.SetupLogOutput(cfg.LogFile)
	if err != nil {
		log.Fatalf("✗ Log file setup failed: %v", err)
	}
	defer logCloser.Close()

	if cfg.TelemetryEnabled {
		shutdownTelemetry, err := telemetry.Init(context.Background(), cfg.TelemetryDir)
		if err != nil {
			log.Fatalf("✗ Telemetry initialization failed: %v", err)
		}
		defer shutdownTelemetry()
		log.Printf("✓ Telemetry exporting to %s", cfg.TelemetryDir)
	}

	// ──── Step 3: Initialize Completion Provider ────
	var completer services.Completer
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		gemini, err := services.NewGeminiCompleter(context.Background(), cfg.LLMAPIKey, cfg.LLMModel)
		if err != nil {
			log.Fatalf("✗ Gemini client initialization failed: %v", err)
		}
		defer gemini.Close()
		completer = gemini
	default:
		openaiCompleter, err := services.NewOpenAICompleter(cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMBaseURL)
		if err != nil {
			log.Fatalf("✗ OpenAI-compatible client initialization failed: %v", err)
		}
		completer = openaiCompleter
	}
	log.Printf("✓ %s provider initialized (model %s)", cfg.LLMProvider, completer.ModelID())

	// ──── Step 4: Wire Services & Handlers ────
	historyRepo := repository.NewHistoryRepo()
	tutorService := services.NewTutorService(completer, historyRepo, cfg.LLMTimeout)
	chatHandler := handlers.NewChatHandler(tutorService)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(chatHandler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout(cfg.LLMTimeout),
		IdleTimeout:  60 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		log.Fatalf("✗ Listen on %s failed: %v", server.Addr, err)
	}

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("✓ Exam Tutor Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  Chat: POST http://localhost:%s/chat", cfg.Port)

	if err := serve(server, ln, sigChan, shutdownDrain); err != nil {
		log.Printf("Server error: %v", err)
	}
	log.Printf("Stopped; history held for %d sessions", historyRepo.SessionCount())
}
