package models

// ChatTurn is a single message in a conversation.
type ChatTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint. Audio carries
// base64-encoded voice input and is required when IsVoice is set.
type ChatRequest struct {
	Message        string     `json:"message"`
	TargetLanguage string     `json:"target_language,omitempty"`
	ChatHistory    []ChatTurn `json:"chat_history"`
	WantsAudio     bool       `json:"wants_audio"`
	IsVoice        bool       `json:"is_voice"`
	Audio          string     `json:"audio,omitempty"`
}

// ChatResponse is the reply returned to the caller. TTSAudio is present
// only when audio was requested and synthesis succeeded.
type ChatResponse struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	TTSAudio []byte `json:"tts_audio,omitempty"`
}

// LanguageEntry is one row of the supported-language listing.
type LanguageEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// IntentCategory is the routing decision for a message. Exactly one
// category applies; classification is first-match-wins.
type IntentCategory int

const (
	IntentDomainGeneral IntentCategory = iota
	IntentSmallTalkGreeting
	IntentSmallTalkThanks
	IntentSmallTalkFarewell
	IntentHelpRejected
	IntentHelpForgotCredentials
	IntentHelpStatusStuck
	IntentHelpGeneral
	IntentHowToApply
)

func (c IntentCategory) String() string {
	switch c {
	case IntentSmallTalkGreeting:
		return "small_talk_greeting"
	case IntentSmallTalkThanks:
		return "small_talk_thanks"
	case IntentSmallTalkFarewell:
		return "small_talk_farewell"
	case IntentHelpRejected:
		return "help_rejected"
	case IntentHelpForgotCredentials:
		return "help_forgot_credentials"
	case IntentHelpStatusStuck:
		return "help_status_stuck"
	case IntentHelpGeneral:
		return "help_general"
	case IntentHowToApply:
		return "how_to_apply"
	default:
		return "domain_general"
	}
}

// Canned reports whether the category resolves to a precomputed answer
// without calling the generation model.
func (c IntentCategory) Canned() bool {
	return c != IntentDomainGeneral
}
