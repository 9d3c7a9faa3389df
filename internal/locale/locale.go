package locale

import "strings"

// Language is a short ISO 639-1 style code from the supported set.
type Language string

const Default Language = "en"

type languageInfo struct {
	Name string
	// TTS is the code the synthesis endpoint accepts; empty means the
	// synthesizer has no voice for this language and English is used.
	TTS string
	// Recognition is the locale-qualified code passed to speech
	// recognition as a hint (e.g. "hi-IN").
	Recognition string
}

var languages = map[Language]languageInfo{
	"en": {Name: "English", TTS: "en", Recognition: "en-IN"},
	"hi": {Name: "Hindi", TTS: "hi", Recognition: "hi-IN"},
	"bn": {Name: "Bengali", TTS: "bn", Recognition: "bn-IN"},
	"te": {Name: "Telugu", TTS: "te", Recognition: "te-IN"},
	"mr": {Name: "Marathi", TTS: "mr", Recognition: "mr-IN"},
	"ta": {Name: "Tamil", TTS: "ta", Recognition: "ta-IN"},
	"gu": {Name: "Gujarati", TTS: "gu", Recognition: "gu-IN"},
	"kn": {Name: "Kannada", TTS: "kn", Recognition: "kn-IN"},
	"ml": {Name: "Malayalam", TTS: "ml", Recognition: "ml-IN"},
	"pa": {Name: "Punjabi", TTS: "", Recognition: "pa-IN"},
	"ur": {Name: "Urdu", TTS: "", Recognition: "ur-IN"},
	"or": {Name: "Odia", TTS: "or", Recognition: "or-IN"},
	"as": {Name: "Assamese", TTS: "", Recognition: "as-IN"},
}

// scriptRange binds one contiguous Unicode block to a language. Ranges are
// consulted in order; the first range containing any rune of the input wins.
type scriptRange struct {
	Lang Language
	Lo   rune
	Hi   rune
}

var scriptRanges = []scriptRange{
	{"hi", 0x0900, 0x097F}, // Devanagari
	{"or", 0x0B00, 0x0B7F}, // Odia
	{"bn", 0x0980, 0x09FF}, // Bengali
	{"ta", 0x0B80, 0x0BFF}, // Tamil
	{"te", 0x0C00, 0x0C7F}, // Telugu
	{"gu", 0x0A80, 0x0AFF}, // Gujarati
	{"kn", 0x0C80, 0x0CFF}, // Kannada
	{"ml", 0x0D00, 0x0D7F}, // Malayalam
	{"pa", 0x0A00, 0x0A7F}, // Gurmukhi
}

// Supported reports whether code belongs to the supported set.
func Supported(code Language) bool {
	_, ok := languages[code]
	return ok
}

// Normalize case-folds a raw client code and coerces anything outside the
// supported set to the default language. Never returns an unsupported code.
func Normalize(code string) Language {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	if Supported(lang) {
		return lang
	}
	return Default
}

// Name returns the display name for a supported language.
func Name(lang Language) string {
	if info, ok := languages[lang]; ok {
		return info.Name
	}
	return languages[Default].Name
}

// TTSCode maps a language to the code the synthesis endpoint accepts,
// falling back to English where no voice exists.
func TTSCode(lang Language) string {
	if info, ok := languages[lang]; ok && info.TTS != "" {
		return info.TTS
	}
	return languages[Default].TTS
}

// RecognitionCode maps a language to the locale-qualified recognition hint.
func RecognitionCode(lang Language) string {
	if info, ok := languages[lang]; ok {
		return info.Recognition
	}
	return languages[Default].Recognition
}

// All returns the supported languages in a stable order for API listings.
func All() []Language {
	return []Language{"en", "hi", "bn", "te", "mr", "ta", "gu", "kn", "ml", "pa", "ur", "or", "as"}
}

// DetectScript scans text against the script-range table and returns the
// language bound to the first range containing any rune, or "" if none match.
func DetectScript(text string) Language {
	for _, sr := range scriptRanges {
		for _, r := range text {
			if r >= sr.Lo && r <= sr.Hi {
				return sr.Lang
			}
		}
	}
	return ""
}
