package services

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/codex-anish/backend/internal/locale"
)

// TTSService converts reply text to speech through a translate-TTS style
// HTTP endpoint. Canned answers are synthesized over and over, so results
// are cached in Redis when a client is configured; a nil cache disables
// caching entirely.
type TTSService struct {
	baseURL  string
	client   *http.Client
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewTTSService(baseURL string, timeout time.Duration, cache *redis.Client, cacheTTL time.Duration) *TTSService {
	return &TTSService{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: timeout},
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Synthesize returns MP3 audio for text in the given language. Languages
// without a voice fall back to the English voice via locale.TTSCode.
func (s *TTSService) Synthesize(ctx context.Context, text string, lang locale.Language) ([]byte, error) {
	code := locale.TTSCode(lang)
	key := fmt.Sprintf("tts:%s:%x", code, sha256.Sum256([]byte(text)))

	if s.cache != nil {
		if audio, err := s.cache.Get(ctx, key).Bytes(); err == nil && len(audio) > 0 {
			return audio, nil
		}
	}

	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", code)
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building TTS request: %w", err)
	}
	req.Header.Set("Accept", "*/*")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("TTS request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("TTS %d: %s", resp.StatusCode, string(body))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading TTS response: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("TTS returned empty audio")
	}

	if s.cache != nil {
		// Best effort; a failed cache write never fails the response.
		s.cache.Set(ctx, key, audio, s.cacheTTL)
	}

	return audio, nil
}
