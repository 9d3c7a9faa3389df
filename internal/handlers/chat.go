package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/codex-anish/backend/internal/locale"
	"github.com/codex-anish/backend/internal/models"
)

// chatPipeline is the router pipeline as the handler sees it.
type chatPipeline interface {
	Respond(ctx context.Context, req models.ChatRequest, audio []byte) models.ChatResponse
}

type ChatHandler struct {
	chat chatPipeline
}

func NewChatHandler(chat chatPipeline) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Chat handles POST /api/v1/chat. Malformed requests get a 400; every
// pipeline-level failure degrades to a textual answer and returns 200.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	var audio []byte
	if req.IsVoice {
		if req.Audio == "" {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Audio payload is required for voice input", r))
			return
		}
		decoded, err := base64.StdEncoding.DecodeString(req.Audio)
		if err != nil || len(decoded) == 0 {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Audio payload must be valid base64", r))
			return
		}
		audio = decoded
		// Keep the raw buffer out of the pipeline; it is only needed
		// for the one transcription call.
		req.Audio = ""
	} else if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Message is required", r))
		return
	}

	resp := h.chat.Respond(r.Context(), req, audio)
	writeJSON(w, http.StatusOK, resp)
}

// Languages handles GET /api/v1/languages and lists the supported set.
func (h *ChatHandler) Languages(w http.ResponseWriter, r *http.Request) {
	entries := make([]models.LanguageEntry, 0, len(locale.All()))
	for _, lang := range locale.All() {
		entries = append(entries, models.LanguageEntry{
			Code: string(lang),
			Name: locale.Name(lang),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"languages": entries})
}
