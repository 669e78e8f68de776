package youtube

import "strings"

// buildTracks turns a validated player response into the ordered track list.
// A missing or empty captions block means the owner disabled transcripts.
func buildTracks(pr *playerResponse, videoID string) ([]Track, error) {
	if err := assertPlayable(pr.PlayabilityStatus, videoID); err != nil {
		return nil, err
	}

	if pr.Captions == nil || pr.Captions.PlayerCaptionsTracklistRenderer == nil {
		return nil, errTranscriptsDisabled(videoID)
	}
	renderer := pr.Captions.PlayerCaptionsTracklistRenderer
	if len(renderer.CaptionTracks) == 0 {
		return nil, errTranscriptsDisabled(videoID)
	}

	// Translation targets come from one response-level list, shared verbatim
	// by every translatable track rather than re-derived per track.
	targets := make([]TranslationTarget, 0, len(renderer.TranslationLanguages))
	for _, tl := range renderer.TranslationLanguages {
		targets = append(targets, TranslationTarget{
			Language:     runsText(tl.LanguageName, tl.LanguageCode),
			LanguageCode: tl.LanguageCode,
		})
	}

	tracks := make([]Track, 0, len(renderer.CaptionTracks))
	for _, ct := range renderer.CaptionTracks {
		t := Track{
			VideoID: videoID,
			// srv3 is YouTube's alternate caption format; stripping the
			// parameter makes the URL serve the plain timedtext XML.
			URL:            strings.Replace(ct.BaseURL, "&fmt=srv3", "", 1),
			Language:       runsText(ct.Name, ct.LanguageCode),
			LanguageCode:   ct.LanguageCode,
			IsGenerated:    ct.Kind == "asr",
			IsTranslatable: ct.IsTranslatable,
		}
		if ct.IsTranslatable {
			t.TranslationTargets = targets
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// runsText resolves a display name: first text run, then plain text, then
// the fallback (usually the raw language code).
func runsText(tr *textRuns, fallback string) string {
	if tr != nil {
		if len(tr.Runs) > 0 && tr.Runs[0].Text != "" {
			return tr.Runs[0].Text
		}
		if tr.SimpleText != "" {
			return tr.SimpleText
		}
	}
	return fallback
}
