package locale

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Detector guesses a language code from text when no script range matches.
// The zero guess ("") or ok=false means the detector could not decide.
type Detector interface {
	Detect(text string) (code string, ok bool)
}

type whatlangDetector struct{}

func (whatlangDetector) Detect(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	info := whatlanggo.Detect(text)
	if info.Script == nil {
		return "", false
	}
	code := info.Lang.Iso6391()
	if code == "" {
		return "", false
	}
	return code, true
}

// NewDetector returns the statistical trigram detector.
func NewDetector() Detector {
	return whatlangDetector{}
}

// Words the trigram detector routinely misfiles as Swahili when users type
// Hindi in Latin script. Substring presence is enough; the words are long
// enough not to collide with English.
var romanizedIndicWords = []string{
	"namaste", "namaskar", "dhanyavaad", "dhanyabad", "shukriya",
	"yojana", "sarkari", "avedan", "kaise", "kripya", "madad",
}

func looksRomanizedIndic(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range romanizedIndicWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// Resolver decides the response language for a message. Pure and
// idempotent; the same inputs always yield the same language.
type Resolver struct {
	detector          Detector
	romanizedFallback Language
}

func NewResolver(detector Detector, romanizedFallback Language) *Resolver {
	if !Supported(romanizedFallback) {
		romanizedFallback = Default
	}
	return &Resolver{detector: detector, romanizedFallback: romanizedFallback}
}

// Resolve returns the language for text. An explicit client code wins
// outright (normalized, coerced to the default when unsupported). Otherwise
// script ranges are checked first, then the statistical detector; a detector
// failure or an unsupported guess defaults to English. A Swahili guess on
// text that reads like Romanized Hindi is coerced to the configured
// fallback, since the detector is known to misfile transliterated Indic
// text that way.
func (r *Resolver) Resolve(text, explicit string) Language {
	if strings.TrimSpace(explicit) != "" {
		return Normalize(explicit)
	}
	if lang := DetectScript(text); lang != "" {
		return lang
	}
	code, ok := r.detector.Detect(text)
	if !ok {
		return Default
	}
	if code == "sw" && looksRomanizedIndic(text) {
		return r.romanizedFallback
	}
	return Normalize(code)
}
