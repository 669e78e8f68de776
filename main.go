// go_transcript — YouTube transcript MCP server.
//
// Exposes two MCP tools: get-transcript, get-transcript-languages.
// Transcripts are pulled from YouTube's unofficial Innertube endpoints with
// multi-client fallback; no official API key is required.
//
// Also ships a registration CLI (register/unregister/list/verify/detect)
// that edits local MCP client configuration files.
package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/install"
	"github.com/anatolykoptev/go_transcript/internal/youtube"
	"github.com/anatolykoptev/go_transcript/internal/ytserver"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var version = "dev"

func main() {
	if len(os.Args) > 1 && install.IsCommand(os.Args[1]) {
		os.Exit(install.RunCLI(os.Args[1:]))
	}

	_ = godotenv.Load()
	initEngine()

	mcpPort := env.Str("MCP_PORT", "8893")
	slog.Info("starting go_transcript",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_transcript",
		Version: version,
	}, nil)

	ytserver.RegisterTools(server, youtube.NewFetcher())
	slog.Info("tools registered", slog.Int("count", 2))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_transcript",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	fetchTimeout := env.Duration("FETCH_TIMEOUT", 15*time.Second)
	engine.Init(engine.Config{
		FetchTimeout:      fetchTimeout,
		DefaultLanguages:  env.List("DEFAULT_LANGUAGES", "en"),
		YouTubeRPS:        env.Float("YOUTUBE_RPS", 0),
		MaxWatchPageBytes: int64(env.Int("MAX_WATCH_PAGE_BYTES", 6*1024*1024)),
		MaxXMLBytes:       int64(env.Int("MAX_XML_BYTES", 2*1024*1024)),
		HTTPClient: &http.Client{
			Timeout: fetchTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	})
}
