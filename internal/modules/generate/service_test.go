package generate

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"

	appcfg "github.com/soez-labs/blogforge/internal/config"
	"github.com/soez-labs/blogforge/internal/pkg/apperrors"
)

type fakeGenerator struct {
	calls   int
	content string
	err     error
}

func (f *fakeGenerator) GenerateText(ctx context.Context, provider *appcfg.AIProvider, prompt string) (string, error) {
	f.calls++
	return f.content, f.err
}

func testConfig() *appcfg.AppConfig {
	return &appcfg.AppConfig{
		AI: appcfg.AIConfig{
			Providers: []appcfg.AIProvider{
				{ID: "gemini", Type: "gemini", APIKey: "test-key", Enabled: true},
			},
		},
	}
}

func TestGenerateMissingFieldsSkipsProvider(t *testing.T) {
	gen := &fakeGenerator{content: "text"}
	svc := NewService(testConfig(), gen)

	_, err := svc.Generate(context.Background(), Request{PrimaryKeyword: "seo"})
	assert.Equal(t, true, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = svc.Generate(context.Background(), Request{Topic: "SEO tips"})
	assert.Equal(t, true, apperrors.IsKind(err, apperrors.KindValidation))

	// No provider call may happen before validation passes.
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateNoProviderConfigured(t *testing.T) {
	gen := &fakeGenerator{content: "text"}
	cfg := &appcfg.AppConfig{}
	svc := NewService(cfg, gen)

	_, err := svc.Generate(context.Background(), Request{Topic: "SEO tips", PrimaryKeyword: "seo"})
	assert.Equal(t, true, apperrors.IsKind(err, apperrors.KindConfiguration))
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateDisabledProviderIgnored(t *testing.T) {
	gen := &fakeGenerator{content: "text"}
	cfg := &appcfg.AppConfig{
		AI: appcfg.AIConfig{
			Providers: []appcfg.AIProvider{
				{ID: "gemini", Type: "gemini", APIKey: "key", Enabled: false},
			},
		},
	}
	svc := NewService(cfg, gen)

	_, err := svc.Generate(context.Background(), Request{Topic: "SEO tips", PrimaryKeyword: "seo"})
	assert.Equal(t, true, apperrors.IsKind(err, apperrors.KindConfiguration))
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateSuccess(t *testing.T) {
	gen := &fakeGenerator{content: "## Heading\n\nSome generated body text here."}
	svc := NewService(testConfig(), gen)

	res, err := svc.Generate(context.Background(), Request{
		Topic:          "SEO tips for 2026",
		PrimaryKeyword: "Website SEO!",
		Tone:           "Casual",
		ArticleType:    "How-to Guide",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, gen.calls)

	assert.Equal(t, gen.content, res.Content)
	assert.Equal(t, "How to SEO tips for 2026", res.Metadata.Title)
	assert.Equal(t, "website-seo", res.Metadata.Slug)
	assert.Equal(t, CountWords(gen.content), res.Metadata.WordCount)

	// Settings echo the request, with the word count default applied.
	assert.Equal(t, "SEO tips for 2026", res.Settings.Topic)
	assert.Equal(t, defaultWordCount, res.Settings.WordCount)
}

func TestGenerateProviderFailureNotRetried(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream exploded")}
	svc := NewService(testConfig(), gen)

	_, err := svc.Generate(context.Background(), Request{Topic: "SEO tips", PrimaryKeyword: "seo"})
	assert.Equal(t, true, apperrors.IsKind(err, apperrors.KindGeneration))
	assert.Equal(t, 1, gen.calls)
}
