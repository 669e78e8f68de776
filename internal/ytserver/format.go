package ytserver

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/youtube"
)

// formatTranscript renders snippets as one line per caption with a timestamp
// prefix, or as a single space-joined block without timestamps.
func formatTranscript(snippets []youtube.Snippet, includeTimestamps bool) string {
	if !includeTimestamps {
		parts := make([]string, 0, len(snippets))
		for _, s := range snippets {
			parts = append(parts, s.Text)
		}
		return strings.Join(parts, " ")
	}

	var sb strings.Builder
	for i, s := range snippets {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%s] %s", formatTime(s.Start), s.Text)
	}
	return sb.String()
}

// formatTime renders seconds as M:SS, or H:MM:SS past the first hour.
func formatTime(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
