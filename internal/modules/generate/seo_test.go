package generate

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "website-seo", Slug("Website SEO!"))
	assert.Equal(t, "best-crm-tools", Slug("  Best CRM   Tools  "))
	assert.Equal(t, "react-vs-vue", Slug("React_vs_Vue"))
	assert.Equal(t, "go", Slug("--go--"))
	assert.Equal(t, "", Slug("!!!"))
}

func TestSlugIdempotent(t *testing.T) {
	inputs := []string{
		"Website SEO!",
		"  Best CRM   Tools  ",
		"React_vs_Vue",
		"already-a-slug",
	}
	for _, in := range inputs {
		once := Slug(in)
		assert.Equal(t, once, Slug(once))
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "How to SEO tips for 2026", Title("SEO tips for 2026", "How-to Guide"))
	assert.Equal(t, "Top 10 CRM tools", Title("CRM tools", "Listicle"))
	assert.Equal(t, "Why remote work is here to stay", Title("remote work is here to stay", "Opinion"))
	// Prefix already present, compared case-insensitively.
	assert.Equal(t, "how to bake bread", Title("how to bake bread", "How-to Guide"))
	// Unknown article type leaves the topic untouched.
	assert.Equal(t, "SEO tips", Title("SEO tips", "Tutorial"))
}

func TestMetaDescription(t *testing.T) {
	desc := MetaDescription("Website SEO", "seo basics", "Professional")
	assert.Equal(t, "Discover website seo in this expert guide. Learn everything about seo basics with practical tips and actionable advice. Read now!", desc)

	assert.MatchRegex(t, MetaDescription("X", "y", "Casual"), "friendly guide")
	assert.MatchRegex(t, MetaDescription("X", "y", "Academic"), "comprehensive guide")
	assert.MatchRegex(t, MetaDescription("X", "y", "Conversational"), "expert guide")
}

func TestMetaDescriptionCap(t *testing.T) {
	long := "a very long topic that keeps going and going and going and going and going and going and going and going and going and going and going and going and going"
	desc := MetaDescription(long, "keyword", "Professional")
	if len([]rune(desc)) > 160 {
		t.Fatalf("meta description exceeds 160 characters: %d", len([]rune(desc)))
	}
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 2, CountWords("  a   b  "))
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   \n\t "))
	assert.Equal(t, 5, CountWords("one two\nthree\tfour five"))
}
