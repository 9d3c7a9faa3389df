package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/codex-anish/backend/internal/locale"
	"github.com/codex-anish/backend/internal/models"
)

// Collaborator contracts. The pipeline only sees these interfaces so tests
// can substitute stubs and count calls.

type Generator interface {
	GenerateAnswer(ctx context.Context, prompt string) (string, error)
}

type Transcriber interface {
	TranscribeAudio(ctx context.Context, audio []byte, langHint string) (string, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text string, lang locale.Language) ([]byte, error)
}

// ChatService is the message router: language resolution, intent
// classification, prompt composition and response resolution, in that
// order. It holds no per-request state; every call is independent.
type ChatService struct {
	resolver    *locale.Resolver
	generator   Generator
	transcriber Transcriber
	synthesizer Synthesizer
	genTimeout  time.Duration
}

func NewChatService(
	resolver *locale.Resolver,
	generator Generator,
	transcriber Transcriber,
	synthesizer Synthesizer,
	genTimeout time.Duration,
) *ChatService {
	return &ChatService{
		resolver:    resolver,
		generator:   generator,
		transcriber: transcriber,
		synthesizer: synthesizer,
		genTimeout:  genTimeout,
	}
}

// Respond runs one request through the pipeline. All collaborator failures
// degrade to a textual reply; nothing is retried and no error reaches the
// caller. audio is the decoded voice payload, nil for text input.
func (s *ChatService) Respond(ctx context.Context, req models.ChatRequest, audio []byte) models.ChatResponse {
	message := req.Message
	lang := s.resolver.Resolve(message, req.TargetLanguage)

	if req.IsVoice {
		text, err := s.transcriber.TranscribeAudio(ctx, audio, locale.RecognitionCode(lang))
		if err != nil {
			log.Printf("WARNING: transcription failed: %v", err)
			return models.ChatResponse{
				Text:     locale.UnintelligibleAudio(lang),
				Language: string(lang),
			}
		}
		message = text
		// The transcript is the first real look at the user's words;
		// re-resolve unless the client pinned a language.
		lang = s.resolver.Resolve(message, req.TargetLanguage)
	}

	category := Classify(message, req.ChatHistory)
	composed := Compose(category, message, req.ChatHistory, lang)

	text := composed.Text
	if !composed.Canned {
		genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
		answer, err := s.generator.GenerateAnswer(genCtx, composed.Text)
		cancel()
		if err != nil {
			log.Printf("WARNING: generation failed, using fallback: %v", err)
			text = locale.GenerationFallback(lang)
		} else {
			text = answer
		}
	}

	resp := models.ChatResponse{Text: text, Language: string(lang)}

	if req.WantsAudio {
		speech, err := s.synthesizer.Synthesize(ctx, StripMarkup(text), lang)
		if err != nil {
			log.Printf("WARNING: synthesis failed, returning text only: %v", err)
		} else {
			resp.TTSAudio = speech
		}
	}

	return resp
}

var markupReplacer = strings.NewReplacer(
	"**", "",
	"*", "",
	"__", "",
	"#", "",
	"`", "",
)

// StripMarkup removes emphasis markers the synthesizer would otherwise
// read out loud.
func StripMarkup(text string) string {
	return strings.TrimSpace(markupReplacer.Replace(text))
}
