package youtube

import (
	"context"
	"log/slog"
)

// FetchOptions controls transcript selection and rendering.
type FetchOptions struct {
	// Languages is the preference order of language codes. Empty = ["en"].
	Languages []string
	// PreserveFormatting keeps the small set of inline formatting tags
	// (<b>, <i>, ...) instead of stripping every tag.
	PreserveFormatting bool
}

// Fetcher composes the resolver, Innertube client, catalog, selector and
// parser into the two public operations. It performs no recovery of its own:
// the most specific error from any stage propagates unchanged.
type Fetcher struct {
	client *Client
}

// NewFetcher returns a Fetcher backed by the production YouTube endpoints.
func NewFetcher() *Fetcher {
	return &Fetcher{client: NewClient()}
}

// NewFetcherWithClient is the seam for tests and custom transports.
func NewFetcherWithClient(c *Client) *Fetcher {
	return &Fetcher{client: c}
}

// ListTranscripts returns every transcript track available for the given
// video URL or ID, in upstream order.
func (f *Fetcher) ListTranscripts(ctx context.Context, input string) ([]Track, error) {
	videoID, err := ResolveVideoID(input)
	if err != nil {
		return nil, err
	}
	return f.listByID(ctx, videoID)
}

func (f *Fetcher) listByID(ctx context.Context, videoID string) ([]Track, error) {
	pr, err := f.client.FetchPlayerData(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return buildTracks(pr, videoID)
}

// FetchTranscript fetches the best matching transcript for the given video
// URL or ID and parses it into timed snippets.
func (f *Fetcher) FetchTranscript(ctx context.Context, input string, opts FetchOptions) (*Transcript, error) {
	languages := opts.Languages
	if len(languages) == 0 {
		languages = []string{"en"}
	}

	videoID, err := ResolveVideoID(input)
	if err != nil {
		return nil, err
	}

	tracks, err := f.listByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	track, err := selectTrack(tracks, languages, videoID)
	if err != nil {
		return nil, err
	}

	xmlText, err := f.client.FetchTimedText(ctx, track.URL, videoID)
	if err != nil {
		return nil, err
	}

	snippets, err := ParseTranscriptXML(xmlText, videoID, opts.PreserveFormatting)
	if err != nil {
		return nil, err
	}

	slog.Debug("transcript fetched",
		slog.String("video_id", videoID),
		slog.String("language_code", track.LanguageCode),
		slog.Bool("generated", track.IsGenerated),
		slog.Int("snippets", len(snippets)))

	return &Transcript{
		Snippets:     snippets,
		VideoID:      videoID,
		Language:     track.Language,
		LanguageCode: track.LanguageCode,
		IsGenerated:  track.IsGenerated,
	}, nil
}
