package youtube

import (
	"errors"
	"fmt"
	"strings"
)

const watchURLPrefix = "https://www.youtube.com/watch?v="

// ErrKind identifies one member of the closed error taxonomy.
type ErrKind int

const (
	ErrTranscriptsDisabled ErrKind = iota
	ErrNoTranscriptFound
	ErrVideoUnavailable
	ErrInvalidVideoID
	ErrRequestBlocked
	ErrRequestFailed
	ErrDataUnparsable
	ErrAgeRestricted
	ErrVideoUnplayable
	ErrTranscriptParseFailed
)

// VideoError is the single error type for everything that can go wrong while
// acquiring a transcript. Kind tags the variant, VideoID is the shared
// payload; the remaining fields are populated per kind. Message rendering
// lives entirely in Error(), keeping the data free of presentation.
type VideoError struct {
	Kind    ErrKind
	VideoID string

	// ErrNoTranscriptFound
	RequestedLanguages []string
	AvailableLanguages []string

	// ErrRequestFailed
	StatusCode int
	StatusText string

	// ErrVideoUnplayable
	Reason     string
	SubReasons []string

	// ErrTranscriptParseFailed
	Cause error
}

func (e *VideoError) Error() string {
	watch := watchURLPrefix + e.VideoID

	switch e.Kind {
	case ErrTranscriptsDisabled:
		return fmt.Sprintf("Transcripts are disabled for video: %s\n\n"+
			"This means the video owner has disabled subtitles/captions for this video.", watch)

	case ErrNoTranscriptFound:
		available := "None"
		if len(e.AvailableLanguages) > 0 {
			available = strings.Join(e.AvailableLanguages, ", ")
		}
		return fmt.Sprintf("No transcripts found for video: %s\n\n"+
			"Requested languages: %s\nAvailable languages: %s",
			watch, strings.Join(e.RequestedLanguages, ", "), available)

	case ErrVideoUnavailable:
		return fmt.Sprintf("The video is no longer available: %s\n\n"+
			"This could mean the video has been deleted, is private, or is otherwise inaccessible.", watch)

	case ErrInvalidVideoID:
		return fmt.Sprintf("Invalid video ID: %s\n\n"+
			"Make sure you're providing the video ID, not the full URL.\n"+
			`Example: "dQw4w9WgXcQ" not "https://www.youtube.com/watch?v=dQw4w9WgXcQ"`, e.VideoID)

	case ErrRequestBlocked:
		return fmt.Sprintf("Request to YouTube was blocked for video: %s\n\n"+
			"This usually happens when:\n"+
			"1. Too many requests from your IP address\n"+
			"2. Your IP is from a cloud provider (AWS, GCP, Azure, etc.)\n"+
			"3. YouTube's bot detection triggered\n\n"+
			"Try again later or use a different network.", watch)

	case ErrRequestFailed:
		return fmt.Sprintf("YouTube request failed for video: %s\n\nHTTP %d: %s",
			watch, e.StatusCode, e.StatusText)

	case ErrDataUnparsable:
		return fmt.Sprintf("Could not parse YouTube data for video: %s\n\n"+
			"This is unusual and may indicate YouTube has changed their page structure. "+
			"Please report this issue.", watch)

	case ErrAgeRestricted:
		return fmt.Sprintf("Video is age-restricted: %s\n\n"+
			"Age-restricted videos require authentication, which is not currently supported.", watch)

	case ErrVideoUnplayable:
		reason := e.Reason
		if reason == "" {
			reason = "No reason specified"
		}
		msg := fmt.Sprintf("Video is unplayable: %s\n\nReason: %s", watch, reason)
		if len(e.SubReasons) > 0 {
			msg += "\n\nAdditional details:"
			for _, r := range e.SubReasons {
				msg += "\n  - " + r
			}
		}
		return msg

	case ErrTranscriptParseFailed:
		return fmt.Sprintf("Failed to parse transcript XML for video: %s\n\nError: %v", watch, e.Cause)
	}
	return fmt.Sprintf("transcript error for video %s", e.VideoID)
}

func (e *VideoError) Unwrap() error { return e.Cause }

// AsVideoError extracts a *VideoError from err's chain.
func AsVideoError(err error) (*VideoError, bool) {
	var ve *VideoError
	ok := errors.As(err, &ve)
	return ve, ok
}

// IsKind reports whether err carries a VideoError of the given kind.
func IsKind(err error, kind ErrKind) bool {
	ve, ok := AsVideoError(err)
	return ok && ve.Kind == kind
}

// Constructors keep call sites terse and every variant's required fields explicit.

func errTranscriptsDisabled(videoID string) *VideoError {
	return &VideoError{Kind: ErrTranscriptsDisabled, VideoID: videoID}
}

func errNoTranscriptFound(videoID string, requested, available []string) *VideoError {
	return &VideoError{
		Kind: ErrNoTranscriptFound, VideoID: videoID,
		RequestedLanguages: requested, AvailableLanguages: available,
	}
}

func errVideoUnavailable(videoID string) *VideoError {
	return &VideoError{Kind: ErrVideoUnavailable, VideoID: videoID}
}

func errInvalidVideoID(videoID string) *VideoError {
	return &VideoError{Kind: ErrInvalidVideoID, VideoID: videoID}
}

func errRequestBlocked(videoID string) *VideoError {
	return &VideoError{Kind: ErrRequestBlocked, VideoID: videoID}
}

func errRequestFailed(videoID string, statusCode int, statusText string) *VideoError {
	return &VideoError{
		Kind: ErrRequestFailed, VideoID: videoID,
		StatusCode: statusCode, StatusText: statusText,
	}
}

func errDataUnparsable(videoID string) *VideoError {
	return &VideoError{Kind: ErrDataUnparsable, VideoID: videoID}
}

func errAgeRestricted(videoID string) *VideoError {
	return &VideoError{Kind: ErrAgeRestricted, VideoID: videoID}
}

func errVideoUnplayable(videoID, reason string, subReasons []string) *VideoError {
	return &VideoError{
		Kind: ErrVideoUnplayable, VideoID: videoID,
		Reason: reason, SubReasons: subReasons,
	}
}

func errTranscriptParseFailed(videoID string, cause error) *VideoError {
	return &VideoError{Kind: ErrTranscriptParseFailed, VideoID: videoID, Cause: cause}
}
