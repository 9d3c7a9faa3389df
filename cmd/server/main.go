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

	"github.com/redis/go-redis/v9"

	"github.com/codex-anish/backend/internal/config"
	"github.com/codex-anish/backend/internal/database"
	"github.com/codex-anish/backend/internal/handlers"
	"github.com/codex-anish/backend/internal/locale"
	"github.com/codex-anish/backend/internal/router"
	"github.com/codex-anish/backend/internal/services"
)

func main() {
	log.Println("🚀 Starting AAROH Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Redis Cache (optional) ────
	var cache *redis.Client
	if cfg.RedisURL != "" {
		var err error
		cache, err = database.NewCache(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer cache.Close()
		log.Println("✓ Redis connected (TTS cache enabled)")
	} else {
		log.Println("- REDIS_URL not set, TTS cache disabled")
	}

	// ──── Step 3: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		cfg.GeminiConcurrentReqs,
	)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini client initialized (%s)", cfg.GeminiModel)

	// ──── Step 4: Initialize Speech Synthesis ────
	ttsService := services.NewTTSService(
		cfg.TTSBaseURL,
		time.Duration(cfg.TTSTimeoutSecs)*time.Second,
		cache,
		time.Duration(cfg.TTSCacheTTLMins)*time.Minute,
	)
	log.Println("✓ Speech synthesis client initialized")

	// ──── Step 5: Assemble the Message Router ────
	resolver := locale.NewResolver(locale.NewDetector(), locale.Language(cfg.RomanizedFallback))
	chatService := services.NewChatService(
		resolver,
		geminiService,
		geminiService,
		ttsService,
		time.Duration(cfg.GenerateTimeoutSecs)*time.Second,
	)
	chatHandler := handlers.NewChatHandler(chatService)

	// ──── Step 6: Start HTTP Server ────
	r := router.New(chatHandler, cfg.AllowedOrigin, cfg.ChatRatePerMinute)

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

	log.Printf("✓ AAROH Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
