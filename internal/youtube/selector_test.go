package youtube

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectTrackManualBeatsGenerated(t *testing.T) {
	tracks := []Track{
		{LanguageCode: "en", IsGenerated: true},
		{LanguageCode: "en", IsGenerated: false},
		{LanguageCode: "fr", IsGenerated: false},
	}
	got, err := selectTrack(tracks, []string{"en"}, "vid")
	require.NoError(t, err)
	require.Equal(t, "en", got.LanguageCode)
	require.False(t, got.IsGenerated, "manual en track must win over generated en")
}

func TestSelectTrackLanguagePriorityDominates(t *testing.T) {
	// A generated track in the first-priority language beats a manual track
	// in a later one.
	tracks := []Track{
		{LanguageCode: "en", IsGenerated: true},
		{LanguageCode: "fr", IsGenerated: false},
	}
	got, err := selectTrack(tracks, []string{"en", "fr"}, "vid")
	require.NoError(t, err)
	require.Equal(t, "en", got.LanguageCode)
	require.True(t, got.IsGenerated)
}

func TestSelectTrackFallsBackToSecondLanguage(t *testing.T) {
	tracks := []Track{
		{LanguageCode: "fr", IsGenerated: false},
	}
	got, err := selectTrack(tracks, []string{"en", "fr"}, "vid")
	require.NoError(t, err)
	require.Equal(t, "fr", got.LanguageCode)
}

func TestSelectTrackNoMatch(t *testing.T) {
	tracks := []Track{
		{LanguageCode: "de", IsGenerated: false},
		{LanguageCode: "de", IsGenerated: true},
		{LanguageCode: "ja", IsGenerated: true},
	}
	_, err := selectTrack(tracks, []string{"en", "fr"}, "vid")
	require.Error(t, err)

	ve, ok := AsVideoError(err)
	require.True(t, ok)
	require.Equal(t, ErrNoTranscriptFound, ve.Kind)
	require.Equal(t, "vid", ve.VideoID)
	require.Equal(t, []string{"en", "fr"}, ve.RequestedLanguages)
	// Available codes are reported verbatim, duplicates included.
	require.Equal(t, []string{"de", "de", "ja"}, ve.AvailableLanguages)
}
