package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/novella/internal/domain"
	"google.golang.org/genai"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// GeminiConfig holds configuration for the Gemini-backed provider.
// Credentials are injected here rather than read from ambient process state
// so the provider is substitutable with a test double.
type GeminiConfig struct {
	APIKey         string
	Model          string
	TimeoutSeconds int
}

// GeminiProvider implements domain.Recommender and domain.VibeWriter against
// the Gemini API. It is stateless between invocations; every call is one
// outbound request with no retry.
type GeminiProvider struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

var (
	_ domain.Recommender = (*GeminiProvider)(nil)
	_ domain.VibeWriter  = (*GeminiProvider)(nil)
)

// recommendationSchema constrains the model to a JSON array of partial book
// records. Everything beyond title/author is best-effort; defaults repair
// the rest.
var recommendationSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":         {Type: genai.TypeString},
			"author":        {Type: genai.TypeString},
			"description":   {Type: genai.TypeString, Description: "A short, engaging synopsis of the book."},
			"genre":         {Type: genai.TypeString},
			"rating":        {Type: genai.TypeNumber, Description: "Average rating out of 5"},
			"originalPrice": {Type: genai.TypeNumber, Description: "Original MSRP price in USD"},
		},
		Required: []string{"title", "author", "description", "genre", "rating", "originalPrice"},
	},
}

// NewGeminiProvider creates a provider from explicit credentials.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig, logger *slog.Logger) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 30
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

// Model returns the model name this provider calls.
func (p *GeminiProvider) Model() string {
	return p.model
}

// Recommend asks the model for up to MaxResults real-world books matching
// the query and derives full listings from the partial records it returns.
// Transport and parse failures are logged and surface as an empty result,
// exactly like a legitimate zero-match response.
func (p *GeminiProvider) Recommend(ctx context.Context, query string) ([]domain.Book, error) {
	prompt := fmt.Sprintf(
		"Recommend %d specific real-world books based on this user request: %q.\n"+
			"Ensure the books are diverse.\n"+
			"Provide the response in JSON format.",
		MaxResults, query,
	)

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   recommendationSchema,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		p.logger.Warn("recommendation request failed", "error", err)
		return nil, nil
	}

	text := resp.Text()
	if text == "" {
		p.logger.Warn("recommendation response had no text")
		return nil, nil
	}

	raws := parseRecommendations([]byte(text))
	if len(raws) == 0 {
		p.logger.Warn("recommendation response had no usable elements")
		return nil, nil
	}

	return buildBooks(raws, time.Now()), nil
}

// DescribeVibe asks the model for a single poetic sentence about the title.
// It never fails from the caller's perspective; errors degrade to fixed
// fallback text.
func (p *GeminiProvider) DescribeVibe(ctx context.Context, title, author string) string {
	prompt := fmt.Sprintf(
		"In one short, poetic sentence, describe the \"vibe\" or aesthetic of reading %q by %s.",
		title, author,
	)

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		p.logger.Warn("vibe request failed", "title", title, "error", err)
		return FallbackVibe
	}

	if text := resp.Text(); text != "" {
		return text
	}
	return EmptyResponseVibe
}
