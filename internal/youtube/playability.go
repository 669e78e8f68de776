package youtube

import "strings"

// Playability status values YouTube reports for a video.
const (
	statusOK            = "OK"
	statusError         = "ERROR"
	statusLoginRequired = "LOGIN_REQUIRED"
)

// Reason strings are matched exactly; Accept-Language is pinned to English so
// these stay stable.
const (
	reasonBotCheck      = "Sign in to confirm you're not a bot"
	reasonInappropriate = "This video may be inappropriate for some users."
	reasonUnavailable   = "This video is unavailable"
)

// assertPlayable maps a playabilityStatus block to a specific error, or
// returns nil when the video is playable. A missing block is treated as OK:
// some client variants omit it entirely on success.
func assertPlayable(ps *playabilityStatus, videoID string) error {
	if ps == nil || ps.Status == statusOK {
		return nil
	}

	if ps.Status == statusLoginRequired {
		if ps.Reason == reasonBotCheck {
			return errRequestBlocked(videoID)
		}
		if ps.Reason == reasonInappropriate {
			return errAgeRestricted(videoID)
		}
	}

	if ps.Status == statusError && ps.Reason == reasonUnavailable {
		// A URL that slipped through resolution produces the same upstream
		// reason as a genuinely missing video; tell the caller which it was.
		if strings.HasPrefix(videoID, "http://") || strings.HasPrefix(videoID, "https://") {
			return errInvalidVideoID(videoID)
		}
		return errVideoUnavailable(videoID)
	}

	return errVideoUnplayable(videoID, ps.Reason, subReasons(ps))
}

// subReasons collects the text runs under the error screen's sub-reason
// renderer. Empty slice when any link in the chain is absent.
func subReasons(ps *playabilityStatus) []string {
	out := []string{}
	if ps.ErrorScreen == nil || ps.ErrorScreen.PlayerErrorMessageRenderer == nil {
		return out
	}
	sub := ps.ErrorScreen.PlayerErrorMessageRenderer.Subreason
	if sub == nil {
		return out
	}
	for _, r := range sub.Runs {
		out = append(out, r.Text)
	}
	return out
}
