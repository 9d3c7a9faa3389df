package services

import (
	"fmt"
	"strings"

	"github.com/codex-anish/backend/internal/locale"
	"github.com/codex-anish/backend/internal/models"
)

// historyWindow bounds the conversation context sent to the model. Older
// turns are dropped silently.
const historyWindow = 10

// Composed carries the single canned-vs-generated decision from the
// composer to the response resolver. When Canned is set, Text is the final
// answer; otherwise Text is the prompt for the generation model.
type Composed struct {
	Canned bool
	Text   string
}

// Compose turns a classified message into either a canned answer or a
// generation prompt. Canned categories never reach the model.
func Compose(category models.IntentCategory, text string, history []models.ChatTurn, lang locale.Language) Composed {
	if category.Canned() {
		if answer, ok := locale.CannedResponse(category, lang); ok {
			return Composed{Canned: true, Text: answer}
		}
	}
	return Composed{Text: buildDomainPrompt(text, history, lang)}
}

// Transcript renders the bounded history window as "Role: content" lines,
// oldest first, at most historyWindow turns.
func Transcript(history []models.ChatTurn) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	var b strings.Builder
	for _, turn := range history {
		role := "Assistant"
		if turn.Role == "user" {
			role = "User"
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", role, turn.Content))
	}
	return b.String()
}

func buildDomainPrompt(question string, history []models.ChatTurn, lang locale.Language) string {
	var b strings.Builder

	// Layer 1 — Role and domain scope
	b.WriteString("You are AAROH, an AI assistant specifically designed for PM-AJAY (Pradhan Mantri Anusuchit Jaati Abhyuday Yojana) — a national programme for Scheduled Caste development.\n\n")

	// Layer 2 — Target language
	b.WriteString(locale.Instruction(lang))
	b.WriteString("\n\n")

	// Layer 3 — Bounded conversation history
	b.WriteString("Conversation History:\n")
	b.WriteString(Transcript(history))
	b.WriteString("\n")

	// Layer 4 — Domain constraints
	b.WriteString(`CRITICAL RULES:

- You ONLY answer questions related to PM-AJAY or Scheduled Caste welfare.
- If the user asks anything outside PM-AJAY, politely say you can only help with PM-AJAY related topics.
- Be simple, friendly, accurate, and avoid long paragraphs.
- Ask one question at a time if eligibility assessment is needed.
- Never generate false information. Give government-style answers.
- If uncertain, suggest contacting the local SC Welfare Office.

PM-AJAY Key Components:
1. Education & Scholarships
2. Skill Development & Livelihood Training
3. Entrepreneurship & Income Generation
4. Housing & Infrastructure Support
5. Health, Nutrition & Social Justice
6. Digital Empowerment
7. Grant-in-Aid (GIA) for community development projects

Target Beneficiaries: Scheduled Caste individuals & communities.

`)

	// Layer 5 — Question
	b.WriteString(fmt.Sprintf("User Question: %s\n\n", question))
	b.WriteString(fmt.Sprintf("Now give a clear, correct and helpful answer in %s:\n", locale.Name(lang)))

	return b.String()
}
