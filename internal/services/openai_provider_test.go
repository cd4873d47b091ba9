package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parley/internal/models"
)

// --- Mock OpenAI Client ---

type mockOpenAIClient struct {
	mockResponse openai.ChatCompletionResponse
	mockError    error
	lastRequest  openai.ChatCompletionRequest
}

func (m *mockOpenAIClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	m.lastRequest = req
	if m.mockError != nil {
		return openai.ChatCompletionResponse{}, m.mockError
	}
	return m.mockResponse, nil
}

// --- End Mock OpenAI Client ---

func TestOpenAIProvider_GenerateChatCompletion(t *testing.T) {
	mockClient := &mockOpenAIClient{
		mockResponse: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "Paris."}},
			},
		},
	}
	provider := &OpenAIProvider{client: mockClient, model: defaultOpenAIModel}

	out, err := provider.GenerateChatCompletion(context.Background(), []ChatMessage{
		{Role: ChatMessageRoleSystem, Content: "You are a helpful assistant."},
		{Role: ChatMessageRoleUser, Content: "What is the capital of France?"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Paris.", out)

	req := mockClient.lastRequest
	assert.Equal(t, defaultOpenAIModel, req.Model)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Equal(t, "user", req.Messages[1].Role)
	assert.Equal(t, completionMaxTokens, req.MaxTokens)
}

func TestOpenAIProvider_APIError(t *testing.T) {
	mockErr := errors.New("simulated transport failure")
	provider := &OpenAIProvider{client: &mockOpenAIClient{mockError: mockErr}, model: defaultOpenAIModel}

	_, err := provider.GenerateChatCompletion(context.Background(), []ChatMessage{
		{Role: ChatMessageRoleUser, Content: "hello"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, mockErr, "returned error should wrap the original API error")
	assert.Contains(t, err.Error(), "openai chat completion failed")
}

func TestOpenAIProvider_EmptyResponse(t *testing.T) {
	testCases := []struct {
		name string
		resp openai.ChatCompletionResponse
	}{
		{name: "No choices", resp: openai.ChatCompletionResponse{}},
		{
			name: "Blank content",
			resp: openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: ""}}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &OpenAIProvider{client: &mockOpenAIClient{mockResponse: tc.resp}, model: defaultOpenAIModel}
			_, err := provider.GenerateChatCompletion(context.Background(), []ChatMessage{
				{Role: ChatMessageRoleUser, Content: "hello"},
			})
			assert.ErrorIs(t, err, models.ErrEmptyCompletion)
		})
	}
}

func TestOpenAIProvider_DisabledWithoutKey(t *testing.T) {
	provider := NewOpenAIProvider("", "")

	assert.Equal(t, ProviderStatusDisabled, provider.Status())
	assert.Equal(t, defaultOpenAIModel, provider.ModelName())

	_, err := provider.GenerateChatCompletion(context.Background(), []ChatMessage{
		{Role: ChatMessageRoleUser, Content: "hello"},
	})
	assert.ErrorIs(t, err, models.ErrProviderNotConfigured)
}
