package engine

import "context"

// User-Agent strings used across HTTP clients.
const (
	// UserAgentDesktop is the fixed desktop browser identity sent on every
	// YouTube request. YouTube serves a different (and less parseable) page
	// to unknown agents.
	UserAgentDesktop = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_4) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/85.0.4183.83 Safari/537.36,gzip(gfe)"
)

// AcceptLanguage pins upstream responses to English so that playability
// reason strings can be matched exactly.
const AcceptLanguage = "en-US,en;q=0.9"

// WaitYouTube blocks until the outbound rate limiter admits one more
// YouTube request. No-op when no rate limit is configured.
func WaitYouTube(ctx context.Context) error {
	if youtubeLimiter == nil {
		return nil
	}
	return youtubeLimiter.Wait(ctx)
}
