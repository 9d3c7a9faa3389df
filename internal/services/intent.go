package services

import (
	"strings"

	"github.com/codex-anish/backend/internal/models"
)

// Keyword tables for the classifier. The exact lists are tuning data, not
// a contract; the matching policy (substring for thanks, whole-token for
// farewell, exact-message for bare greetings, substring for help intents)
// is pinned by tests.

var thanksKeywords = []string{
	"thank", "dhanyavaad", "dhanyabad", "shukriya", "धन्यवाद", "ଧନ୍ୟବାଦ",
}

var farewellKeywords = []string{
	"bye", "goodbye", "alvida", "अलविदा",
}

var greetingKeywords = []string{
	"hi", "hello", "hey", "namaste", "namaskar", "vanakkam", "नमस्ते", "ନମସ୍କାର",
}

// Help/FAQ rules, most specific first. The first rule with any keyword
// present anywhere in the normalized message wins.
var helpRules = []struct {
	category models.IntentCategory
	keywords []string
}{
	{models.IntentHelpRejected, []string{
		"rejected", "rejection", "अस्वीकृत",
	}},
	{models.IntentHelpForgotCredentials, []string{
		"forgot password", "forgot my password", "reset password",
		"forgot user", "lost password", "पासवर्ड भूल",
	}},
	{models.IntentHelpStatusStuck, []string{
		"stuck", "no update", "status not", "pending for", "अटका",
	}},
	{models.IntentHowToApply, []string{
		"how to apply", "how do i apply", "how can i apply",
		"registration", "register", "apply online", "आवेदन कैसे",
	}},
	{models.IntentHelpGeneral, []string{
		"help", "problem", "issue", "support", "not working", "error",
		"समस्या", "मदद",
	}},
}

// Classify maps a message to exactly one intent category. Total and
// deterministic: every input yields a category, identical inputs yield
// identical results. Thanks and farewells match regardless of history;
// bare greetings only open a conversation, so they require empty history.
func Classify(text string, history []models.ChatTurn) models.IntentCategory {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return models.IntentDomainGeneral
	}

	for _, kw := range thanksKeywords {
		if strings.Contains(normalized, kw) {
			return models.IntentSmallTalkThanks
		}
	}
	if containsToken(normalized, farewellKeywords) {
		return models.IntentSmallTalkFarewell
	}
	if len(history) == 0 && isBareGreeting(normalized) {
		return models.IntentSmallTalkGreeting
	}

	for _, rule := range helpRules {
		for _, kw := range rule.keywords {
			if strings.Contains(normalized, kw) {
				return rule.category
			}
		}
	}
	return models.IntentDomainGeneral
}

// isBareGreeting matches only when the whole message is a greeting word,
// optionally followed by punctuation. "hi" greets; "hi, my application
// was rejected" must fall through to the help rules.
func isBareGreeting(normalized string) bool {
	trimmed := strings.TrimRight(normalized, "!.?, ")
	for _, kw := range greetingKeywords {
		if trimmed == kw {
			return true
		}
	}
	return false
}

// containsToken matches keywords as whole tokens so short words like
// "bye" do not fire inside words like "maybe".
func containsToken(normalized string, keywords []string) bool {
	for _, field := range strings.Fields(normalized) {
		token := strings.TrimRight(field, "!.?,")
		for _, kw := range keywords {
			if token == kw {
				return true
			}
		}
	}
	return false
}
