package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

const (
	defaultWatchBase  = "https://www.youtube.com/watch?v="
	defaultPlayerBase = "https://www.youtube.com/youtubei/v1/player?key="
)

// ClientProfile is one simulated device identity sent to Innertube. Which
// profile a request claims to come from decides which response variant (and
// which throttling bucket) YouTube applies.
type ClientProfile struct {
	Name              string
	Version           string
	AndroidSdkVersion int
}

// defaultProfiles is the fixed fallback order: the mobile app first (least
// suspicious to upstream), then the web client, then the embedded TV player.
// Each is throttled independently, so trying all three maximizes the chance
// that at least one succeeds.
var defaultProfiles = []ClientProfile{
	{Name: "ANDROID", Version: "19.09.37", AndroidSdkVersion: 30},
	{Name: "WEB", Version: "2.20250103.01.00"},
	{Name: "TVHTML5_SIMPLY_EMBEDDED_PLAYER", Version: "2.0"},
}

// innertubeAPIKeyRe extracts the Innertube API key embedded in watch-page HTML.
var innertubeAPIKeyRe = regexp.MustCompile(`"INNERTUBE_API_KEY":\s*"([A-Za-z0-9_-]+)"`)

// recaptchaMarker appears in the watch page when YouTube serves a CAPTCHA
// challenge instead of the video.
const recaptchaMarker = `class="g-recaptcha"`

func watchPageLimit() int64 {
	if engine.Cfg.MaxWatchPageBytes > 0 {
		return engine.Cfg.MaxWatchPageBytes
	}
	return 6 * 1024 * 1024
}

func xmlLimit() int64 {
	if engine.Cfg.MaxXMLBytes > 0 {
		return engine.Cfg.MaxXMLBytes
	}
	return 2 * 1024 * 1024
}

// Client performs the raw network calls against YouTube's watch page and
// Innertube API. The zero value is not usable; construct with NewClient.
type Client struct {
	HTTP       *http.Client
	WatchBase  string
	PlayerBase string
	Profiles   []ClientProfile
}

// NewClient returns a Client wired to the engine's shared HTTP client and the
// production YouTube endpoints.
func NewClient() *Client {
	httpClient := engine.Cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		HTTP:       httpClient,
		WatchBase:  defaultWatchBase,
		PlayerBase: defaultPlayerBase,
		Profiles:   defaultProfiles,
	}
}

// fetchWatchHTML fetches the public watch page for a video.
// 429 means blocked; any other non-2xx is a plain request failure.
func (c *Client) fetchWatchHTML(ctx context.Context, videoID string) (string, error) {
	engine.IncrWatchPageRequests()
	if err := engine.WaitYouTube(ctx); err != nil {
		return "", errRequestFailed(videoID, 0, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.WatchBase+videoID, nil)
	if err != nil {
		return "", errRequestFailed(videoID, 0, err.Error())
	}
	req.Header.Set("User-Agent", engine.UserAgentDesktop)
	req.Header.Set("Accept-Language", engine.AcceptLanguage)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", errRequestFailed(videoID, 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		engine.IncrBlockedErrors()
		return "", errRequestBlocked(videoID)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		engine.IncrUpstreamErrors()
		return "", errRequestFailed(videoID, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, watchPageLimit()))
	if err != nil {
		return "", errRequestFailed(videoID, 0, err.Error())
	}
	return string(body), nil
}

// extractAPIKey pulls the Innertube API key out of watch-page HTML. A missing
// key plus a CAPTCHA marker means we are blocked; a missing key without one
// means the page structure changed underneath us.
func extractAPIKey(html, videoID string) (string, error) {
	if m := innertubeAPIKeyRe.FindStringSubmatch(html); m != nil {
		return m[1], nil
	}
	if strings.Contains(html, recaptchaMarker) {
		engine.IncrBlockedErrors()
		return "", errRequestBlocked(videoID)
	}
	return "", errDataUnparsable(videoID)
}

// fetchPlayerWithProfile POSTs the player request as one simulated client.
func (c *Client) fetchPlayerWithProfile(ctx context.Context, videoID, apiKey string, p ClientProfile) (*playerResponse, error) {
	engine.IncrInnertubeRequests()
	if err := engine.WaitYouTube(ctx); err != nil {
		return nil, errRequestFailed(videoID, 0, err.Error())
	}

	payload, err := json.Marshal(innertubeReq{
		Context: innertubeCtx{Client: innertubeClientCtx{
			ClientName:        p.Name,
			ClientVersion:     p.Version,
			AndroidSdkVersion: p.AndroidSdkVersion,
		}},
		VideoID: videoID,
	})
	if err != nil {
		return nil, errRequestFailed(videoID, 0, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.PlayerBase+apiKey, bytes.NewReader(payload))
	if err != nil {
		return nil, errRequestFailed(videoID, 0, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", engine.UserAgentDesktop)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errRequestFailed(videoID, 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		engine.IncrBlockedErrors()
		return nil, errRequestBlocked(videoID)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		engine.IncrUpstreamErrors()
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		slog.Debug("innertube client failed",
			slog.String("client", p.Name),
			slog.Int("status", resp.StatusCode),
			slog.String("body", engine.TruncateRunes(string(preview), 200, "…")))
		return nil, errRequestFailed(videoID, resp.StatusCode, resp.Status)
	}

	var pr playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, errDataUnparsable(videoID)
	}
	return &pr, nil
}

// fetchPlayerData calls the Innertube player endpoint once per profile in
// fallback order, returning on first success. When every profile fails the
// LAST error is returned: later profiles are progressively less restricted,
// so their failure says more about the video than the first one's.
func (c *Client) fetchPlayerData(ctx context.Context, videoID, apiKey string) (*playerResponse, error) {
	var lastErr error
	for i, p := range c.Profiles {
		if i > 0 {
			engine.IncrInnertubeFallbacks()
		}
		pr, err := c.fetchPlayerWithProfile(ctx, videoID, apiKey, p)
		if err == nil {
			slog.Debug("innertube client succeeded", slog.String("client", p.Name))
			return pr, nil
		}
		slog.Warn("innertube client failed, trying next",
			slog.String("client", p.Name),
			slog.String("video_id", videoID),
			slog.Any("error", err))
		lastErr = err
	}
	return nil, lastErr
}

// FetchPlayerData resolves the watch page, extracts the API key and returns
// the first successful player response across the client fallback sequence.
func (c *Client) FetchPlayerData(ctx context.Context, videoID string) (*playerResponse, error) {
	html, err := c.fetchWatchHTML(ctx, videoID)
	if err != nil {
		return nil, err
	}
	apiKey, err := extractAPIKey(html, videoID)
	if err != nil {
		return nil, err
	}
	return c.fetchPlayerData(ctx, videoID, apiKey)
}

// FetchTimedText fetches a track's raw timedtext XML. Same blocked/failed
// mapping as the player calls.
func (c *Client) FetchTimedText(ctx context.Context, trackURL, videoID string) (string, error) {
	engine.IncrTimedTextRequests()
	if err := engine.WaitYouTube(ctx); err != nil {
		return "", errRequestFailed(videoID, 0, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
	if err != nil {
		return "", errRequestFailed(videoID, 0, err.Error())
	}
	req.Header.Set("User-Agent", engine.UserAgentDesktop)
	req.Header.Set("Accept-Language", engine.AcceptLanguage)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", errRequestFailed(videoID, 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		engine.IncrBlockedErrors()
		return "", errRequestBlocked(videoID)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		engine.IncrUpstreamErrors()
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", errRequestFailed(videoID, resp.StatusCode,
			resp.Status+": "+engine.TruncateRunes(string(preview), 200, "…"))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, xmlLimit()))
	if err != nil {
		return "", errRequestFailed(videoID, 0, err.Error())
	}
	return string(body), nil
}
