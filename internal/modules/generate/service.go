// Package generate builds SEO prompts and turns them into finished blog
// articles through a configured text-generation provider.
package generate

import (
	"context"
	"time"

	appcfg "github.com/soez-labs/blogforge/internal/config"
	"github.com/soez-labs/blogforge/internal/pkg/apperrors"
	"github.com/soez-labs/blogforge/internal/pkg/metrics"
)

const defaultWordCount = "1500"

// Request carries everything a single generation needs.
type Request struct {
	Topic             string `json:"topic"`
	PrimaryKeyword    string `json:"primaryKeyword"`
	SecondaryKeywords string `json:"secondaryKeywords"`
	Audience          string `json:"audience"`
	Tone              string `json:"tone"`
	ArticleType       string `json:"articleType"`
	WordCount         string `json:"wordCount"`
	IncludeFAQ        bool   `json:"includeFaq"`
	IncludeTOC        bool   `json:"includeToc"`
}

// Metadata is derived locally from the request and the generated text,
// never from the provider.
type Metadata struct {
	Title           string `json:"title"`
	MetaDescription string `json:"metaDescription"`
	Slug            string `json:"slug"`
	WordCount       int    `json:"wordCount"`
}

// Result is one completed generation: the article body, derived
// metadata, and an echo of the settings that produced it.
type Result struct {
	Content  string   `json:"content"`
	Metadata Metadata `json:"metadata"`
	Settings Request  `json:"settings"`
}

type Service struct {
	cfg *appcfg.AppConfig
	gen TextGenerator
}

func NewService(cfg *appcfg.AppConfig, gen TextGenerator) *Service {
	return &Service{cfg: cfg, gen: gen}
}

// Generate validates the request, checks provider configuration, builds
// the prompt, and makes exactly one provider call. Failures are never
// retried; the caller decides whether to resubmit.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	if req.Topic == "" || req.PrimaryKeyword == "" {
		return nil, apperrors.Validation("Topic and primary keyword are required")
	}

	provider := SelectProvider(s.cfg.AI)
	if provider == nil {
		return nil, apperrors.Configuration("Generation API key not configured")
	}

	if req.WordCount == "" {
		req.WordCount = defaultWordCount
	}

	prompt := BuildPrompt(Options{
		Topic:             req.Topic,
		PrimaryKeyword:    req.PrimaryKeyword,
		SecondaryKeywords: req.SecondaryKeywords,
		Audience:          req.Audience,
		Tone:              req.Tone,
		ArticleType:       req.ArticleType,
		WordCount:         req.WordCount,
		IncludeFAQ:        req.IncludeFAQ,
		IncludeTOC:        req.IncludeTOC,
	})

	start := time.Now()
	content, err := s.gen.GenerateText(ctx, provider, prompt)
	metrics.GenerationDuration.WithLabelValues(provider.Type).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GenerationTotal.WithLabelValues(provider.Type, "error").Inc()
		if apperrors.IsKind(err, apperrors.KindConfiguration) {
			return nil, err
		}
		return nil, apperrors.Generation("Failed to generate blog content. Please try again.", err)
	}
	metrics.GenerationTotal.WithLabelValues(provider.Type, "ok").Inc()

	return &Result{
		Content: content,
		Metadata: Metadata{
			Title:           Title(req.Topic, req.ArticleType),
			MetaDescription: MetaDescription(req.Topic, req.PrimaryKeyword, req.Tone),
			Slug:            Slug(req.PrimaryKeyword),
			WordCount:       CountWords(content),
		},
		Settings: req,
	}, nil
}
