package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	TranscriptRequests atomic.Int64
	ListRequests       atomic.Int64
	WatchPageRequests  atomic.Int64
	InnertubeRequests  atomic.Int64
	InnertubeFallbacks atomic.Int64
	TimedTextRequests  atomic.Int64
	BlockedErrors      atomic.Int64
	UpstreamErrors     atomic.Int64
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"transcript_requests": metrics.TranscriptRequests.Load(),
		"list_requests":       metrics.ListRequests.Load(),
		"watch_page_requests": metrics.WatchPageRequests.Load(),
		"innertube_requests":  metrics.InnertubeRequests.Load(),
		"innertube_fallbacks": metrics.InnertubeFallbacks.Load(),
		"timedtext_requests":  metrics.TimedTextRequests.Load(),
		"blocked_errors":      metrics.BlockedErrors.Load(),
		"upstream_errors":     metrics.UpstreamErrors.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"transcript_requests", "list_requests",
		"watch_page_requests", "innertube_requests", "innertube_fallbacks",
		"timedtext_requests",
		"blocked_errors", "upstream_errors",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the ytserver package.
func IncrTranscriptRequests() { metrics.TranscriptRequests.Add(1) }
func IncrListRequests()       { metrics.ListRequests.Add(1) }

// Incrementors for the youtube package.
func IncrWatchPageRequests()  { metrics.WatchPageRequests.Add(1) }
func IncrInnertubeRequests()  { metrics.InnertubeRequests.Add(1) }
func IncrInnertubeFallbacks() { metrics.InnertubeFallbacks.Add(1) }
func IncrTimedTextRequests()  { metrics.TimedTextRequests.Add(1) }
func IncrBlockedErrors()      { metrics.BlockedErrors.Add(1) }
func IncrUpstreamErrors()     { metrics.UpstreamErrors.Add(1) }
