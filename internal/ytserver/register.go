// Package ytserver registers the transcript tools on an MCP server and
// renders domain results into tool output.
package ytserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/youtube"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type GetTranscriptInput struct {
	URL               string `json:"url" jsonschema:"YouTube video URL (e.g. https://www.youtube.com/watch?v=VIDEO_ID or https://youtu.be/VIDEO_ID) or a bare 11-character video ID"`
	Lang              string `json:"lang,omitempty" jsonschema:"Language code for the transcript (e.g. 'en', 'es', 'fr'). Default: server default languages"`
	IncludeTimestamps *bool  `json:"include_timestamps,omitempty" jsonschema:"Include [MM:SS] timestamps in the transcript output. Default: true"`
}

type GetTranscriptOutput struct {
	VideoID      string `json:"video_id"`
	URL          string `json:"url"`
	Language     string `json:"language"`
	LanguageCode string `json:"language_code"`
	IsGenerated  bool   `json:"is_generated"`
	SnippetCount int    `json:"snippet_count"`
	Transcript   string `json:"transcript"`
}

type GetTranscriptLanguagesInput struct {
	URL string `json:"url" jsonschema:"YouTube video URL or bare video ID"`
}

type LanguageItem struct {
	Language       string `json:"language"`
	LanguageCode   string `json:"language_code"`
	IsGenerated    bool   `json:"is_generated"`
	IsTranslatable bool   `json:"is_translatable"`
}

type GetTranscriptLanguagesOutput struct {
	VideoID   string         `json:"video_id"`
	URL       string         `json:"url"`
	Languages []LanguageItem `json:"languages"`
}

// RegisterTools registers the transcript tools on the given MCP server:
// get-transcript, get-transcript-languages.
func RegisterTools(server *mcp.Server, fetcher *youtube.Fetcher) {
	registerGetTranscript(server, fetcher)
	registerGetTranscriptLanguages(server, fetcher)
}

func registerGetTranscript(server *mcp.Server, fetcher *youtube.Fetcher) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-transcript",
		Description: "Retrieve the transcript of a YouTube video. Accepts various YouTube URL formats and returns the full transcript with timestamps.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input GetTranscriptInput) (*mcp.CallToolResult, GetTranscriptOutput, error) {
		if input.URL == "" {
			return nil, GetTranscriptOutput{}, fmt.Errorf("url is required")
		}
		engine.IncrTranscriptRequests()
		reqID := uuid.NewString()

		languages := engine.Cfg.DefaultLanguages
		if input.Lang != "" {
			languages = []string{input.Lang}
		}

		transcript, err := fetcher.FetchTranscript(ctx, input.URL, youtube.FetchOptions{
			Languages: languages,
		})
		if err != nil {
			slog.Warn("get-transcript failed",
				slog.String("request_id", reqID),
				slog.String("url", input.URL),
				slog.Any("error", err))
			return nil, GetTranscriptOutput{}, err
		}

		includeTimestamps := input.IncludeTimestamps == nil || *input.IncludeTimestamps

		slog.Info("get-transcript ok",
			slog.String("request_id", reqID),
			slog.String("video_id", transcript.VideoID),
			slog.String("language_code", transcript.LanguageCode),
			slog.Int("snippets", len(transcript.Snippets)))

		return nil, GetTranscriptOutput{
			VideoID:      transcript.VideoID,
			URL:          "https://www.youtube.com/watch?v=" + transcript.VideoID,
			Language:     transcript.Language,
			LanguageCode: transcript.LanguageCode,
			IsGenerated:  transcript.IsGenerated,
			SnippetCount: len(transcript.Snippets),
			Transcript:   formatTranscript(transcript.Snippets, includeTimestamps),
		}, nil
	})
}

func registerGetTranscriptLanguages(server *mcp.Server, fetcher *youtube.Fetcher) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-transcript-languages",
		Description: "List all available transcript languages for a YouTube video, including whether each track is auto-generated and translatable.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input GetTranscriptLanguagesInput) (*mcp.CallToolResult, GetTranscriptLanguagesOutput, error) {
		if input.URL == "" {
			return nil, GetTranscriptLanguagesOutput{}, fmt.Errorf("url is required")
		}
		engine.IncrListRequests()
		reqID := uuid.NewString()

		tracks, err := fetcher.ListTranscripts(ctx, input.URL)
		if err != nil {
			slog.Warn("get-transcript-languages failed",
				slog.String("request_id", reqID),
				slog.String("url", input.URL),
				slog.Any("error", err))
			return nil, GetTranscriptLanguagesOutput{}, err
		}

		out := GetTranscriptLanguagesOutput{
			Languages: make([]LanguageItem, 0, len(tracks)),
		}
		if len(tracks) > 0 {
			out.VideoID = tracks[0].VideoID
			out.URL = "https://www.youtube.com/watch?v=" + tracks[0].VideoID
		}
		for _, t := range tracks {
			out.Languages = append(out.Languages, LanguageItem{
				Language:       t.Language,
				LanguageCode:   t.LanguageCode,
				IsGenerated:    t.IsGenerated,
				IsTranslatable: t.IsTranslatable,
			})
		}

		slog.Info("get-transcript-languages ok",
			slog.String("request_id", reqID),
			slog.String("video_id", out.VideoID),
			slog.Int("tracks", len(tracks)))

		return nil, out, nil
	})
}
