package youtube

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The timedtext payload is loosely structured tag soup, not guaranteed
// well-formed XML, so it is scanned with regexes on purpose: a strict XML
// parser rejects inputs that this approach tolerates.

// textElementRe matches <text start="S" dur="D" ...>TEXT</text> with the
// attributes in their usual order.
var textElementRe = regexp.MustCompile(`<text\s+start="([^"]+)"\s+dur="([^"]+)"[^>]*>([^<]*)</text>`)

// textElementAltRe tolerates extra attributes before start/dur, covering
// minor upstream format variance.
var textElementAltRe = regexp.MustCompile(`<text[^>]+start="([^"]+)"[^>]+dur="([^"]+)"[^>]*>([^<]*)</text>`)

var (
	anyTagRe     = regexp.MustCompile(`<[^>]*>`)
	namedTagRe   = regexp.MustCompile(`</?([A-Za-z0-9]+)[^>]*>`)
	numericRefRe = regexp.MustCompile(`&#(\d+);`)
)

// formattingTags is the fixed allow-list kept when formatting is preserved.
var formattingTags = map[string]bool{
	"strong": true, "em": true, "b": true, "i": true, "mark": true,
	"small": true, "del": true, "ins": true, "sub": true, "sup": true,
}

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
)

// decodeEntities resolves the HTML entities YouTube emits in caption text.
func decodeEntities(s string) string {
	s = entityReplacer.Replace(s)
	return numericRefRe.ReplaceAllStringFunc(s, func(ref string) string {
		n, err := strconv.Atoi(ref[2 : len(ref)-1])
		if err != nil {
			return ref
		}
		return string(rune(n))
	})
}

// stripTags removes HTML tags from caption text. With preserveFormatting only
// tags outside the formatting allow-list are removed, open or close,
// case-insensitive.
func stripTags(s string, preserveFormatting bool) string {
	if !preserveFormatting {
		return anyTagRe.ReplaceAllString(s, "")
	}
	return namedTagRe.ReplaceAllStringFunc(s, func(tag string) string {
		name := namedTagRe.FindStringSubmatch(tag)[1]
		if formattingTags[strings.ToLower(name)] {
			return tag
		}
		return ""
	})
}

// ParseTranscriptXML converts raw timedtext XML into ordered snippets.
// Zero matches is not an error — it yields an empty slice; only a snippet
// whose timing cannot be read fails the parse.
func ParseTranscriptXML(xmlText, videoID string, preserveFormatting bool) ([]Snippet, error) {
	snippets, err := scanSnippets(textElementRe, xmlText, videoID, preserveFormatting)
	if err != nil {
		return nil, err
	}
	if len(snippets) == 0 {
		return scanSnippets(textElementAltRe, xmlText, videoID, preserveFormatting)
	}
	return snippets, nil
}

func scanSnippets(re *regexp.Regexp, xmlText, videoID string, preserveFormatting bool) ([]Snippet, error) {
	var snippets []Snippet
	for _, m := range re.FindAllStringSubmatch(xmlText, -1) {
		start, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, errTranscriptParseFailed(videoID, fmt.Errorf("bad start attribute %q: %w", m[1], err))
		}
		dur, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, errTranscriptParseFailed(videoID, fmt.Errorf("bad dur attribute %q: %w", m[2], err))
		}

		text := stripTags(decodeEntities(m[3]), preserveFormatting)
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		snippets = append(snippets, Snippet{Text: text, Start: start, Duration: dur})
	}
	return snippets, nil
}
