package analysis

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/config"
)

// GeminiModel is the default Gemini model for report generation.
const GeminiModel = "gemini-2.5-flash"

// GeminiProvider implements Provider using the Google AI API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider validates the API key and builds the client.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if err := config.CheckCredential("GEMINI_API_KEY", apiKey); err != nil {
		return nil, err
	}
	if model == "" {
		model = GeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: model}, nil
}

// Name returns the provider identifier.
func (p *GeminiProvider) Name() string { return "gemini" }

// Close releases the Gemini client resources.
func (p *GeminiProvider) Close() error { return p.client.Close() }

// Generate performs one generation call with the fixed decoding parameters.
func (p *GeminiProvider) Generate(ctx context.Context, systemInstruction, userMessage string) (*Completion, error) {
	model := p.client.GenerativeModel(p.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}
	model.Temperature = float32Ptr(Temperature)
	model.MaxOutputTokens = int32Ptr(MaxOutputTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(userMessage))
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}
	return convertGeminiResponse(resp), nil
}

func convertGeminiResponse(resp *genai.GenerateContentResponse) *Completion {
	out := &Completion{}
	if resp == nil {
		return out
	}

	for _, cand := range resp.Candidates {
		c := Candidate{
			StopReason: mapGeminiFinishReason(cand.FinishReason),
			RawReason:  cand.FinishReason.String(),
		}
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					c.Text += string(text)
				}
			}
		}
		out.Candidates = append(out.Candidates, c)
	}
	return out
}

// mapGeminiFinishReason keeps the genai vocabulary at this boundary.
func mapGeminiFinishReason(r genai.FinishReason) StopReason {
	switch r {
	case genai.FinishReasonStop:
		return StopNormal
	case genai.FinishReasonSafety:
		return StopSafety
	case genai.FinishReasonRecitation:
		return StopRecitation
	case genai.FinishReasonMaxTokens:
		return StopMaxTokens
	case genai.FinishReasonUnspecified:
		return StopUnspecified
	default:
		return StopOther
	}
}

func float32Ptr(v float32) *float32 { return &v }

func int32Ptr(v int32) *int32 { return &v }
