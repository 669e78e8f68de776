package youtube

// Wire types for the Innertube /player response. The upstream contract is
// unversioned and undocumented, so every nested block is optional and every
// traversal goes through a nil check.

type playerResponse struct {
	PlayabilityStatus *playabilityStatus `json:"playabilityStatus"`
	Captions          *captionsBlock     `json:"captions"`
}

type playabilityStatus struct {
	Status      string       `json:"status"`
	Reason      string       `json:"reason"`
	ErrorScreen *errorScreen `json:"errorScreen"`
}

type errorScreen struct {
	PlayerErrorMessageRenderer *playerErrorMessageRenderer `json:"playerErrorMessageRenderer"`
}

type playerErrorMessageRenderer struct {
	Subreason *textRuns `json:"subreason"`
}

type textRuns struct {
	Runs       []textRun `json:"runs"`
	SimpleText string    `json:"simpleText"`
}

type textRun struct {
	Text string `json:"text"`
}

type captionsBlock struct {
	PlayerCaptionsTracklistRenderer *tracklistRenderer `json:"playerCaptionsTracklistRenderer"`
}

type tracklistRenderer struct {
	CaptionTracks        []captionTrack        `json:"captionTracks"`
	TranslationLanguages []translationLanguage `json:"translationLanguages"`
}

type captionTrack struct {
	BaseURL        string    `json:"baseUrl"`
	Name           *textRuns `json:"name"`
	LanguageCode   string    `json:"languageCode"`
	Kind           string    `json:"kind"` // "asr" = auto-generated
	IsTranslatable bool      `json:"isTranslatable"`
}

type translationLanguage struct {
	LanguageName *textRuns `json:"languageName"`
	LanguageCode string    `json:"languageCode"`
}

// --- Innertube request payload ---

type innertubeReq struct {
	Context innertubeCtx `json:"context"`
	VideoID string       `json:"videoId"`
}

type innertubeCtx struct {
	Client innertubeClientCtx `json:"client"`
}

type innertubeClientCtx struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
}

// --- Public data model ---

// TranslationTarget is one language a translatable track can be rendered in.
// Translation itself is not performed here; the metadata is only surfaced.
type TranslationTarget struct {
	Language     string `json:"language"`
	LanguageCode string `json:"language_code"`
}

// Track describes one available transcript track for a video.
type Track struct {
	VideoID            string              `json:"video_id"`
	URL                string              `json:"-"`
	Language           string              `json:"language"`
	LanguageCode       string              `json:"language_code"`
	IsGenerated        bool                `json:"is_generated"`
	IsTranslatable     bool                `json:"is_translatable"`
	TranslationTargets []TranslationTarget `json:"translation_targets,omitempty"`
}

// Snippet is one timed caption line.
type Snippet struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Transcript is the terminal artifact returned to the caller.
type Transcript struct {
	Snippets     []Snippet `json:"snippets"`
	VideoID      string    `json:"video_id"`
	Language     string    `json:"language"`
	LanguageCode string    `json:"language_code"`
	IsGenerated  bool      `json:"is_generated"`
}
