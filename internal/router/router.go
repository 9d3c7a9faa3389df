package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/codex-anish/backend/internal/handlers"
	"github.com/codex-anish/backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	allowedOrigin string,
	chatRateLimit int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(allowedOrigin))

	// Chat rate limiter (per IP, per minute)
	chatLimiter := middleware.NewRateLimiter(chatRateLimit, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Chat Routes ────
		r.Group(func(r chi.Router) {
			r.Use(chatLimiter.Middleware)
			r.Post("/chat", chatHandler.Chat)
		})

		// ──── Language Listing ────
		r.Get("/languages", chatHandler.Languages)
	})

	return r
}
