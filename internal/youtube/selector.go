package youtube

// selectTrack picks the best track for the caller's language preference
// order. Within each requested language a manually created track beats an
// auto-generated one, but language priority dominates: a manual track in a
// lower-priority language never wins over a generated track in a
// higher-priority one.
func selectTrack(tracks []Track, languages []string, videoID string) (Track, error) {
	for _, lang := range languages {
		for _, t := range tracks {
			if t.LanguageCode == lang && !t.IsGenerated {
				return t, nil
			}
		}
		for _, t := range tracks {
			if t.LanguageCode == lang && t.IsGenerated {
				return t, nil
			}
		}
	}

	available := make([]string, 0, len(tracks))
	for _, t := range tracks {
		available = append(available, t.LanguageCode)
	}
	return Track{}, errNoTranscriptFound(videoID, languages, available)
}
