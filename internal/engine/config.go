package engine

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	FetchTimeout      time.Duration
	DefaultLanguages  []string // preference order used when a tool call has no explicit lang
	YouTubeRPS        float64  // outbound request rate toward YouTube; 0 = unlimited
	MaxWatchPageBytes int64
	MaxXMLBytes       int64
	HTTPClient        *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (youtube, ytserver).
// Always points to the current cfg value.
var Cfg = &cfg

var youtubeLimiter *rate.Limiter

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	if len(c.DefaultLanguages) == 0 {
		c.DefaultLanguages = []string{"en"}
	}
	if c.MaxWatchPageBytes <= 0 {
		c.MaxWatchPageBytes = 6 * 1024 * 1024
	}
	if c.MaxXMLBytes <= 0 {
		c.MaxXMLBytes = 2 * 1024 * 1024
	}
	cfg = c
	Cfg = &cfg

	if c.YouTubeRPS > 0 {
		youtubeLimiter = rate.NewLimiter(rate.Limit(c.YouTubeRPS), 1)
	} else {
		youtubeLimiter = nil
	}
}
