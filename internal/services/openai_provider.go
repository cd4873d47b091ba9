package services

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"parley/internal/models"
)

const (
	defaultOpenAIModel = openai.GPT3Dot5Turbo

	// Generation constants for the assistant workload.
	completionMaxTokens   = 500
	completionTemperature = 0.7
)

// OpenAIProvider implements CompletionService using the OpenAI chat API.
type OpenAIProvider struct {
	client chatCompletionClient
	model  string
}

// chatCompletionClient is the minimal surface of *openai.Client used
// here; a narrow interface keeps the provider mockable in tests.
type chatCompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewOpenAIProvider creates a new OpenAI completion provider. With an
// empty API key the provider is constructed disabled rather than
// failing, so the rest of the app keeps working on the template path.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = defaultOpenAIModel
	}
	if apiKey == "" {
		log.Warn("OpenAI API key not provided. OpenAI provider will be disabled.")
		return &OpenAIProvider{client: nil, model: model}
	}

	log.Infof("OpenAI completion provider initialized with model %s", model)
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string { return "openai" }

// ModelName returns the specific model identifier.
func (p *OpenAIProvider) ModelName() string { return p.model }

// Status returns the operational status of the provider without
// making a network call.
func (p *OpenAIProvider) Status() ProviderStatus {
	if p.client == nil {
		return ProviderStatusDisabled
	}
	return ProviderStatusActive
}

func (p *OpenAIProvider) GenerateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error) {
	if p.client == nil {
		return "", models.ErrProviderNotConfigured
	}

	reqMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		reqMessages[i] = openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    reqMessages,
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", models.ErrEmptyCompletion
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", models.ErrEmptyCompletion
	}
	return content, nil
}

var _ CompletionService = (*OpenAIProvider)(nil)
