package analysis

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Rajeev255/ai-market-analyst-agent-proj/internal/config"
)

const (
	// DashScope OpenAI-compatible endpoint
	DefaultQwenEndpoint = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	ModelQwenPlus = "qwen-plus"
)

// QwenProvider implements Provider against an OpenAI-compatible endpoint
// (Alibaba DashScope by default).
type QwenProvider struct {
	client *openai.Client
	model  string
}

// QwenConfig holds the configuration for the Qwen provider.
type QwenConfig struct {
	APIKey   string
	Endpoint string
	Model    string
}

// NewQwenProvider validates the API key and builds the client.
func NewQwenProvider(cfg QwenConfig) (*QwenProvider, error) {
	if err := config.CheckCredential("DASHSCOPE_API_KEY", cfg.APIKey); err != nil {
		return nil, err
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultQwenEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = ModelQwenPlus
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.Endpoint

	return &QwenProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}, nil
}

// Name returns the provider identifier.
func (p *QwenProvider) Name() string { return "qwen" }

// Close is a no-op; the underlying client has no resources to release.
func (p *QwenProvider) Close() error { return nil }

// Generate performs one chat completion with the fixed decoding parameters.
func (p *QwenProvider) Generate(ctx context.Context, systemInstruction, userMessage string) (*Completion, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: Temperature,
		MaxTokens:   int(MaxOutputTokens),
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("qwen chat completion failed: %w", err)
	}

	out := &Completion{}
	for _, choice := range resp.Choices {
		out.Candidates = append(out.Candidates, Candidate{
			Text:       choice.Message.Content,
			StopReason: mapOpenAIFinishReason(choice.FinishReason),
			RawReason:  string(choice.FinishReason),
		})
	}
	return out, nil
}

// mapOpenAIFinishReason keeps the OpenAI vocabulary at this boundary.
func mapOpenAIFinishReason(r openai.FinishReason) StopReason {
	switch r {
	case openai.FinishReasonStop:
		return StopNormal
	case openai.FinishReasonLength:
		return StopMaxTokens
	case openai.FinishReasonContentFilter:
		return StopSafety
	case openai.FinishReasonNull, "":
		return StopUnspecified
	default:
		return StopOther
	}
}
