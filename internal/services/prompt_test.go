package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/codex-anish/backend/internal/models"
)

func TestTranscript_TruncatesToLastTen(t *testing.T) {
	var history []models.ChatTurn
	for i := 1; i <= 15; i++ {
		role := "user"
		if i%2 == 0 {
			role = "assistant"
		}
		history = append(history, models.ChatTurn{Role: role, Content: fmt.Sprintf("m%d", i)})
	}

	out := Transcript(history)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 transcript lines, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[0], "m6") {
		t.Errorf("expected oldest kept turn m6 first, got %q", lines[0])
	}
	if !strings.HasSuffix(lines[9], "m15") {
		t.Errorf("expected newest turn m15 last, got %q", lines[9])
	}
	if strings.Contains(out, "m5") {
		t.Error("turns older than the window must be dropped")
	}
}

func TestTranscript_RoleLabels(t *testing.T) {
	out := Transcript([]models.ChatTurn{
		{Role: "user", Content: "how to apply?"},
		{Role: "assistant", Content: "register on the portal"},
	})
	if !strings.Contains(out, "User: how to apply?") {
		t.Errorf("missing user line: %q", out)
	}
	if !strings.Contains(out, "Assistant: register on the portal") {
		t.Errorf("missing assistant line: %q", out)
	}
}

func TestCompose_CannedCategory(t *testing.T) {
	got := Compose(models.IntentSmallTalkThanks, "thank you", nil, "hi")
	if !got.Canned {
		t.Fatal("thanks must compose to a canned answer")
	}
	if !strings.Contains(got.Text, "स्वागत") {
		t.Errorf("expected Hindi canned thanks, got %q", got.Text)
	}
}

func TestCompose_CannedFallsBackToEnglish(t *testing.T) {
	got := Compose(models.IntentHelpGeneral, "problem", nil, "ta")
	if !got.Canned {
		t.Fatal("help must compose to a canned answer")
	}
	if !strings.Contains(got.Text, "PM-AJAY portal issues") {
		t.Errorf("expected English fallback entry, got %q", got.Text)
	}
}

func TestCompose_DomainPrompt(t *testing.T) {
	history := []models.ChatTurn{{Role: "user", Content: "earlier question"}}
	got := Compose(models.IntentDomainGeneral, "what is the income limit?", history, "hi")
	if got.Canned {
		t.Fatal("domain-general must compose to a generation prompt")
	}

	for _, want := range []string{
		"PM-AJAY",
		"Respond in Hindi (Devanagari script).",
		"User: earlier question",
		"User Question: what is the income limit?",
		"helpful answer in Hindi",
	} {
		if !strings.Contains(got.Text, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
