package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/codex-anish/backend/internal/locale"
	"github.com/codex-anish/backend/internal/models"
)

type stubGenerator struct {
	calls int
	reply string
	err   error
}

func (s *stubGenerator) GenerateAnswer(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.reply, s.err
}

type stubTranscriber struct {
	calls   int
	text    string
	err     error
	gotHint string
}

func (s *stubTranscriber) TranscribeAudio(ctx context.Context, audio []byte, langHint string) (string, error) {
	s.calls++
	s.gotHint = langHint
	return s.text, s.err
}

type stubSynthesizer struct {
	calls   int
	audio   []byte
	err     error
	gotText string
	gotLang locale.Language
}

func (s *stubSynthesizer) Synthesize(ctx context.Context, text string, lang locale.Language) ([]byte, error) {
	s.calls++
	s.gotText = text
	s.gotLang = lang
	return s.audio, s.err
}

type englishDetector struct{}

func (englishDetector) Detect(string) (string, bool) { return "en", true }

func newTestService(gen *stubGenerator, tr *stubTranscriber, syn *stubSynthesizer) *ChatService {
	resolver := locale.NewResolver(englishDetector{}, "hi")
	return NewChatService(resolver, gen, tr, syn, 5*time.Second)
}

func TestRespond_HindiThanksIsCannedEndToEnd(t *testing.T) {
	gen := &stubGenerator{reply: "should never be used"}
	svc := newTestService(gen, &stubTranscriber{}, &stubSynthesizer{})

	resp := svc.Respond(context.Background(), models.ChatRequest{
		Message:        "thank you",
		TargetLanguage: "hi",
	}, nil)

	want, _ := locale.CannedResponse(models.IntentSmallTalkThanks, "hi")
	if resp.Text != want {
		t.Errorf("expected Hindi canned thanks, got %q", resp.Text)
	}
	if resp.Language != "hi" {
		t.Errorf("expected language hi, got %q", resp.Language)
	}
	if gen.calls != 0 {
		t.Errorf("canned path must not call the generator, got %d calls", gen.calls)
	}
	if resp.TTSAudio != nil {
		t.Error("audio must be absent when not requested")
	}
}

func TestRespond_PortalProblemIsCannedHelp(t *testing.T) {
	gen := &stubGenerator{reply: "should never be used"}
	svc := newTestService(gen, &stubTranscriber{}, &stubSynthesizer{})

	resp := svc.Respond(context.Background(), models.ChatRequest{
		Message:        "I have a problem on the portal",
		TargetLanguage: "en",
	}, nil)

	want, _ := locale.CannedResponse(models.IntentHelpGeneral, "en")
	if resp.Text != want {
		t.Errorf("expected canned English help block, got %q", resp.Text)
	}
	if gen.calls != 0 {
		t.Errorf("canned path must not call the generator, got %d calls", gen.calls)
	}
}

func TestRespond_GenerationFailureUsesLocalizedFallback(t *testing.T) {
	tests := []struct {
		name string
		lang string
	}{
		{"english", "en"},
		{"hindi", "hi"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := &stubGenerator{err: errors.New("deadline exceeded")}
			svc := newTestService(gen, &stubTranscriber{}, &stubSynthesizer{})

			resp := svc.Respond(context.Background(), models.ChatRequest{
				Message:        "what is the income limit for eligibility",
				TargetLanguage: tc.lang,
			}, nil)

			if gen.calls != 1 {
				t.Fatalf("expected exactly one generator call, got %d", gen.calls)
			}
			if resp.Text != locale.GenerationFallback(locale.Language(tc.lang)) {
				t.Errorf("expected %s fallback, got %q", tc.lang, resp.Text)
			}
			if resp.TTSAudio != nil {
				t.Error("tts_audio must stay empty when wants_audio is false")
			}
		})
	}
}

func TestRespond_GeneratedAnswerPassedThrough(t *testing.T) {
	gen := &stubGenerator{reply: "The income limit is 2.5 lakh per year."}
	svc := newTestService(gen, &stubTranscriber{}, &stubSynthesizer{})

	resp := svc.Respond(context.Background(), models.ChatRequest{
		Message:        "what is the income limit",
		TargetLanguage: "en",
	}, nil)

	if resp.Text != gen.reply {
		t.Errorf("expected generated answer, got %q", resp.Text)
	}
	if gen.calls != 1 {
		t.Errorf("expected one generator call, got %d", gen.calls)
	}
}

func TestRespond_WantsAudioStripsMarkup(t *testing.T) {
	gen := &stubGenerator{reply: "**Scholarships** are covered under `Education`."}
	syn := &stubSynthesizer{audio: []byte("mp3-bytes")}
	svc := newTestService(gen, &stubTranscriber{}, syn)

	resp := svc.Respond(context.Background(), models.ChatRequest{
		Message:        "tell me about scholarships",
		TargetLanguage: "en",
		WantsAudio:     true,
	}, nil)

	if syn.calls != 1 {
		t.Fatalf("expected one synthesis call, got %d", syn.calls)
	}
	if syn.gotText != "Scholarships are covered under Education." {
		t.Errorf("markup not stripped before synthesis: %q", syn.gotText)
	}
	if syn.gotLang != "en" {
		t.Errorf("expected en synthesis, got %q", syn.gotLang)
	}
	if string(resp.TTSAudio) != "mp3-bytes" {
		t.Errorf("expected audio attached, got %v", resp.TTSAudio)
	}
}

func TestRespond_SynthesisFailureDropsAudioOnly(t *testing.T) {
	gen := &stubGenerator{reply: "answer text"}
	syn := &stubSynthesizer{err: errors.New("tts down")}
	svc := newTestService(gen, &stubTranscriber{}, syn)

	resp := svc.Respond(context.Background(), models.ChatRequest{
		Message:        "a domain question",
		TargetLanguage: "en",
		WantsAudio:     true,
	}, nil)

	if resp.Text != "answer text" {
		t.Errorf("text must survive a synthesis failure, got %q", resp.Text)
	}
	if resp.TTSAudio != nil {
		t.Error("audio must be dropped on synthesis failure")
	}
}

func TestRespond_TranscriptionFailureIsTerminal(t *testing.T) {
	gen := &stubGenerator{reply: "should never be used"}
	tr := &stubTranscriber{err: errors.New("unintelligible")}
	syn := &stubSynthesizer{audio: []byte("mp3")}
	svc := newTestService(gen, tr, syn)

	resp := svc.Respond(context.Background(), models.ChatRequest{
		TargetLanguage: "hi",
		IsVoice:        true,
		WantsAudio:     true,
	}, []byte("wav-bytes"))

	if tr.calls != 1 {
		t.Fatalf("expected one transcription attempt, got %d", tr.calls)
	}
	if resp.Text != locale.UnintelligibleAudio("hi") {
		t.Errorf("expected localized unintelligible message, got %q", resp.Text)
	}
	if gen.calls != 0 || syn.calls != 0 {
		t.Error("no further stages may run after a failed transcription")
	}
}

func TestRespond_VoiceTranscriptDrivesClassification(t *testing.T) {
	gen := &stubGenerator{reply: "should never be used"}
	tr := &stubTranscriber{text: "thank you"}
	svc := newTestService(gen, tr, &stubSynthesizer{})

	resp := svc.Respond(context.Background(), models.ChatRequest{
		TargetLanguage: "hi",
		IsVoice:        true,
	}, []byte("wav-bytes"))

	if tr.gotHint != "hi-IN" {
		t.Errorf("expected hi-IN recognition hint, got %q", tr.gotHint)
	}
	want, _ := locale.CannedResponse(models.IntentSmallTalkThanks, "hi")
	if resp.Text != want {
		t.Errorf("expected canned thanks for transcript, got %q", resp.Text)
	}
	if gen.calls != 0 {
		t.Errorf("canned transcript must not call the generator, got %d", gen.calls)
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**bold** and *italic*", "bold and italic"},
		{"# Heading\nplain", "Heading\nplain"},
		{"`code`", "code"},
		{"no markup", "no markup"},
	}
	for _, tc := range tests {
		if got := StripMarkup(tc.in); got != tc.want {
			t.Errorf("StripMarkup(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRespond_DeterministicLanguageForScriptInput(t *testing.T) {
	gen := &stubGenerator{err: errors.New("down")}
	svc := newTestService(gen, &stubTranscriber{}, &stubSynthesizer{})

	resp := svc.Respond(context.Background(), models.ChatRequest{
		Message: "योजना की पात्रता क्या है",
	}, nil)

	if resp.Language != "hi" {
		t.Errorf("expected script-detected hi, got %q", resp.Language)
	}
	if !strings.Contains(resp.Text, "क्षमा करें") {
		t.Errorf("expected Hindi fallback text, got %q", resp.Text)
	}
}
