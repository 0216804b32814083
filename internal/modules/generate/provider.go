package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	anthropicclient "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	jetai "go.jetify.com/ai"
	jetapi "go.jetify.com/ai/api"
	jetanthropic "go.jetify.com/ai/provider/anthropic"
	jetopenai "go.jetify.com/ai/provider/openai"

	appcfg "github.com/soez-labs/blogforge/internal/config"
	"github.com/soez-labs/blogforge/internal/pkg/apperrors"
)

const (
	defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/openai"
	generationMaxTokens   = 8192
	generationTimeout     = 120 * time.Second
)

// TextGenerator produces article text from a fully built prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, provider *appcfg.AIProvider, prompt string) (string, error)
}

// ProviderGenerator dispatches to the configured upstream: Gemini and
// other OpenAI-compatible services via their chat-completions HTTP API,
// OpenAI and Anthropic via their SDKs.
type ProviderGenerator struct {
	client *http.Client
}

func NewProviderGenerator() *ProviderGenerator {
	return &ProviderGenerator{
		client: &http.Client{Timeout: generationTimeout},
	}
}

// SelectProvider returns the first enabled provider with an API key, or
// nil when none is usable.
func SelectProvider(cfg appcfg.AIConfig) *appcfg.AIProvider {
	for i := range cfg.Providers {
		p := &cfg.Providers[i]
		if p.Enabled && strings.TrimSpace(p.APIKey) != "" {
			return p
		}
	}
	return nil
}

func (g *ProviderGenerator) GenerateText(ctx context.Context, provider *appcfg.AIProvider, prompt string) (string, error) {
	if provider == nil {
		return "", apperrors.Configuration("no generation provider configured")
	}
	switch normalizeProviderType(provider.Type) {
	case "gemini":
		endpoint := strings.TrimSpace(provider.Endpoint)
		if endpoint == "" {
			endpoint = defaultGeminiEndpoint
		}
		model := strings.TrimSpace(provider.DefaultModel)
		if model == "" {
			model = "gemini-1.5-flash"
		}
		return g.callChatCompletions(ctx, strings.TrimRight(endpoint, "/")+"/chat/completions", provider.APIKey, model, prompt)
	case "openai-compatible", "openaicompatible":
		endpoint := normalizeCompatibleEndpoint(provider.Endpoint)
		model := strings.TrimSpace(provider.DefaultModel)
		if model == "" {
			model = "gpt-4o-mini"
		}
		return g.callChatCompletions(ctx, endpoint+"/v1/chat/completions", provider.APIKey, model, prompt)
	default:
		return g.callLanguageModel(ctx, provider, prompt)
	}
}

func normalizeProviderType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = strings.ReplaceAll(t, "_", "-")
	t = strings.ReplaceAll(t, " ", "")
	return t
}

// callChatCompletions posts a single-message chat completion request and
// returns the first choice's content.
func (g *ProviderGenerator) callChatCompletions(ctx context.Context, url, apiKey, model, prompt string) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", apperrors.Configuration("generation provider api key is empty")
	}

	body, _ := json.Marshal(map[string]interface{}{
		"model": model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"max_tokens": generationMaxTokens,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", apperrors.Generation("failed to build provider request", err)
	}
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", apperrors.Generation("provider request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.Generation("failed to read provider response", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", apperrors.Generation(
			fmt.Sprintf("provider error: %s", strings.TrimSpace(string(respBody))), nil)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", apperrors.Generation("failed to decode provider response", err)
	}
	if result.Error != nil && strings.TrimSpace(result.Error.Message) != "" {
		return "", apperrors.Generation("provider error: "+result.Error.Message, nil)
	}
	if len(result.Choices) == 0 {
		return "", apperrors.Generation("empty response from provider", nil)
	}
	return result.Choices[0].Message.Content, nil
}

// callLanguageModel routes OpenAI and Anthropic through their SDK-backed
// language model adapters.
func (g *ProviderGenerator) callLanguageModel(ctx context.Context, provider *appcfg.AIProvider, prompt string) (string, error) {
	model, err := buildLanguageModel(provider)
	if err != nil {
		return "", err
	}
	resp, err := jetai.GenerateText(
		ctx,
		[]jetapi.Message{
			&jetapi.UserMessage{Content: jetapi.ContentFromText(prompt)},
		},
		jetai.WithModel(model),
		jetai.WithMaxOutputTokens(generationMaxTokens),
	)
	if err != nil {
		return "", apperrors.Generation("provider request failed", err)
	}
	return extractText(resp)
}

func buildLanguageModel(provider *appcfg.AIProvider) (jetapi.LanguageModel, error) {
	apiKey := strings.TrimSpace(provider.APIKey)
	if apiKey == "" {
		return nil, apperrors.Configuration("generation provider api key is empty")
	}

	modelID := strings.TrimSpace(provider.DefaultModel)
	endpoint := strings.TrimSpace(provider.Endpoint)

	if normalizeProviderType(provider.Type) == "anthropic" {
		if modelID == "" {
			modelID = "claude-haiku-4-5-20251001"
		}
		opts := []anthropicoption.RequestOption{
			anthropicoption.WithAPIKey(apiKey),
			anthropicoption.WithMaxRetries(0),
		}
		if endpoint != "" {
			opts = append(opts, anthropicoption.WithBaseURL(strings.TrimRight(endpoint, "/")))
		}
		client := anthropicclient.NewClient(opts...)
		return jetanthropic.NewLanguageModel(modelID, jetanthropic.WithClient(client)), nil
	}

	if modelID == "" {
		modelID = "gpt-4o-mini"
	}
	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(apiKey),
		openaioption.WithMaxRetries(0),
	}
	if normalized := normalizeOpenAIBaseURL(endpoint); normalized != "" {
		opts = append(opts, openaioption.WithBaseURL(normalized))
	}
	client := openaiclient.NewClient(opts...)
	return jetopenai.NewLanguageModel(modelID, jetopenai.WithClient(client)), nil
}

func extractText(resp *jetapi.Response) (string, error) {
	if resp == nil {
		return "", apperrors.Generation("empty response from provider", nil)
	}
	var full strings.Builder
	for _, block := range resp.Content {
		textBlock, ok := block.(*jetapi.TextBlock)
		if !ok || textBlock.Text == "" {
			continue
		}
		full.WriteString(textBlock.Text)
	}
	text := full.String()
	if strings.TrimSpace(text) == "" {
		return "", apperrors.Generation("empty response from provider", nil)
	}
	return text, nil
}

func normalizeOpenAIBaseURL(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return ""
	}
	parsed, err := neturl.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return strings.TrimRight(base, "/")
	}
	path := strings.TrimRight(parsed.Path, "/")
	if !strings.HasSuffix(path, "/v1") {
		if path == "" {
			path = "/v1"
		} else {
			path += "/v1"
		}
	}
	parsed.Path = path
	return strings.TrimRight(parsed.String(), "/")
}

func normalizeCompatibleEndpoint(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return "https://api.openai.com"
	}
	parsed, err := neturl.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		cleaned := strings.TrimRight(base, "/")
		return strings.TrimSuffix(cleaned, "/v1")
	}
	path := strings.TrimRight(parsed.Path, "/")
	path = strings.TrimSuffix(path, "/v1")
	parsed.Path = path
	return strings.TrimRight(parsed.String(), "/")
}
