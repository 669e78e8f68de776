package youtube

import "regexp"

// bareVideoIDRe matches a canonical 11-character video ID on its own.
var bareVideoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// urlVideoIDRes are tried in fixed priority order against URL-shaped input.
// Extraction stops at the next '&', '?' or '/', so trailing query garbage
// after the ID is ignored.
var urlVideoIDRes = []*regexp.Regexp{
	regexp.MustCompile(`[?&]v=([^&?/]+)`),
	regexp.MustCompile(`youtu\.be/([^&?/]+)`),
	regexp.MustCompile(`/embed/([^&?/]+)`),
	regexp.MustCompile(`/v/([^&?/]+)`),
	regexp.MustCompile(`/e/([^&?/]+)`),
}

// ResolveVideoID normalizes a bare ID or any recognized YouTube URL form into
// the video identifier. First matching pattern wins; the result is not
// re-validated downstream.
func ResolveVideoID(input string) (string, error) {
	if bareVideoIDRe.MatchString(input) {
		return input, nil
	}
	for _, re := range urlVideoIDRes {
		if m := re.FindStringSubmatch(input); m != nil && m[1] != "" {
			return m[1], nil
		}
	}
	return "", errInvalidVideoID(input)
}
