package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	genai "google.golang.org/genai"

	"specforge/internal/composer"
	"specforge/internal/spec"
)

const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiClient is a thin wrapper around the official genai client. Each
// GenerateSpec call performs exactly one GenerateContent request.
type GeminiClient struct {
	cli   *genai.Client
	model string
}

// NewGeminiClient validates the credential before touching the network; a
// missing key surfaces as ErrConfiguration.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrConfiguration)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return &GeminiClient{cli: cli, model: model}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }
func (g *GeminiClient) Close() error { return nil }

func (g *GeminiClient) GenerateSpec(ctx context.Context, req composer.Request) (*spec.SpecificationResult, error) {
	log.Printf("LLM request (%s): system=%d bytes user=%d bytes", g.model, len(req.System), len(req.User))

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: req.User}}}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: req.System}}},
			ResponseMIMEType:  "application/json",
			ResponseSchema:    ResultSchema(),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}
	return DecodeResult(text)
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}
