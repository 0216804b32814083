package generate

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugStrip     = regexp.MustCompile(`[^\w\s-]`)
	slugSeparator = regexp.MustCompile(`[\s_-]+`)
)

// Slug turns a keyword into a URL-safe slug: lowercase, punctuation
// stripped, runs of whitespace/underscores/hyphens collapsed to a single
// hyphen. Applying it to its own output returns the same string.
func Slug(keyword string) string {
	s := strings.ToLower(strings.TrimSpace(keyword))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSeparator.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

var titlePrefixes = map[string]string{
	"How-to Guide": "How to",
	"Listicle":     "Top 10",
	"Comparison":   "Complete Guide:",
	"Opinion":      "Why",
	"Review":       "Honest Review:",
	"Case Study":   "Case Study:",
}

// Title derives an SEO title from the topic. Known article types get a
// prefix unless the topic already starts with it (compared
// case-insensitively); unknown types return the topic unchanged.
func Title(topic, articleType string) string {
	prefix := titlePrefixes[articleType]
	if prefix != "" && !strings.HasPrefix(strings.ToLower(topic), strings.ToLower(prefix)) {
		return prefix + " " + topic
	}
	return topic
}

// MetaDescription builds a meta description from the topic and primary
// keyword, capped at 160 characters.
func MetaDescription(topic, keyword, tone string) string {
	toneWord := "expert"
	switch tone {
	case "Casual":
		toneWord = "friendly"
	case "Academic":
		toneWord = "comprehensive"
	}
	desc := fmt.Sprintf(
		"Discover %s in this %s guide. Learn everything about %s with practical tips and actionable advice. Read now!",
		strings.ToLower(topic), toneWord, keyword,
	)
	if runes := []rune(desc); len(runes) > 160 {
		desc = string(runes[:160])
	}
	return desc
}

// CountWords counts whitespace-separated words, ignoring empty runs.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
