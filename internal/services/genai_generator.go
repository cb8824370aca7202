// internal/services/genai_generator.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/config"
)

// GenAIDraftGenerator drafts notification emails with a Gemini model using a
// JSON response schema so subject and body come back as separate fields.
type GenAIDraftGenerator struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewGenAIDraftGenerator(ctx context.Context, cfg config.LLMConfig) (*GenAIDraftGenerator, error) {
	if cfg.APIKey == "" {
		return nil, ErrGeneratorNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GenAIDraftGenerator{
		client:      client,
		model:       model,
		temperature: float32(cfg.Temperature),
	}, nil
}

var emailDraftSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"emailSubject": {Type: genai.TypeString, Description: "Concise subject line"},
		"emailBody":    {Type: genai.TypeString, Description: "HTML email body"},
	},
	Required: []string{"emailSubject", "emailBody"},
}

func (g *GenAIDraftGenerator) GenerateEmailDraft(ctx context.Context, prompt string) (*EmailDraft, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(g.temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   emailDraftSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("GenAI generate failed: %w", err)
	}

	return parseEmailDraft(resp.Text())
}

// parseEmailDraft tolerates models that wrap JSON in a markdown fence.
func parseEmailDraft(raw string) (*EmailDraft, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyDraft
	}

	var draft EmailDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("%w: response is not a JSON draft: %v", ErrEmptyDraft, err)
	}
	return &draft, nil
}

// unconfiguredGenerator stands in when no model credentials are present.
type unconfiguredGenerator struct{}

func (unconfiguredGenerator) GenerateEmailDraft(context.Context, string) (*EmailDraft, error) {
	return nil, ErrGeneratorNotConfigured
}

// NewEmailDraftGenerator returns a generator that reports
// ErrGeneratorNotConfigured on every call when no API key is set.
func NewEmailDraftGenerator(ctx context.Context, cfg config.LLMConfig) (EmailDraftGenerator, error) {
	g, err := NewGenAIDraftGenerator(ctx, cfg)
	if errors.Is(err, ErrGeneratorNotConfigured) {
		return unconfiguredGenerator{}, nil
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}
