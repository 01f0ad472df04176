package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/orion-labs/orionwiki/internal/core/ports/driven"
)

// Ensure ChatService implements the interface.
var _ driven.ChatService = (*ChatService)(nil)

// DefaultChatModel is used when no chat model is configured.
const DefaultChatModel = "gpt-4o-mini"

// ChatConfig holds configuration for the chat service.
type ChatConfig struct {
	// APIKey is the API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.openai.com/v1).
	// Can be changed for Azure OpenAI or compatible APIs.
	BaseURL string

	// Model is the chat model to use (default: gpt-4o-mini).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration

	// RateLimit paces requests; zero values select defaults.
	RateLimit RateLimitConfig
}

// ChatService provides chat completions over an OpenAI-compatible API.
type ChatService struct {
	client *client
	model  string
}

// chatCompletionRequest is the /chat/completions request format.
type chatCompletionRequest struct {
	Model    string              `json:"model"`
	Messages []chatCompletionMsg `json:"messages"`
}

// chatCompletionMsg is the wire chat message format.
type chatCompletionMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse is the /chat/completions response format.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *apiError `json:"error,omitempty"`
}

// NewChatService creates a chat service.
func NewChatService(cfg ChatConfig) (*ChatService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultChatModel
	}
	return &ChatService{
		client: newClient(cfg.APIKey, cfg.BaseURL, cfg.Timeout, NewRateLimiter(cfg.RateLimit)),
		model:  cfg.Model,
	}, nil
}

// Chat sends the messages and returns the text of one completion.
func (s *ChatService) Chat(ctx context.Context, messages []driven.ChatMessage) (string, error) {
	wireMessages := make([]chatCompletionMsg, len(messages))
	for i, msg := range messages {
		wireMessages[i] = chatCompletionMsg{Role: msg.Role, Content: msg.Content}
	}

	status, body, err := s.client.postJSON(ctx, "/chat/completions", chatCompletionRequest{
		Model:    s.model,
		Messages: wireMessages,
	})
	if err != nil {
		return "", err
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("openai error: %s", chatResp.Error.Message)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("openai error (status %d): %s", status, string(body))
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("openai: no response choices returned")
	}
	return chatResp.Choices[0].Message.Content, nil
}

// ModelName returns the name of the chat model being used.
func (s *ChatService) ModelName() string {
	return s.model
}

// Ping validates the service is reachable without running inference.
func (s *ChatService) Ping(ctx context.Context) error {
	return s.client.ping(ctx)
}

// Close releases resources.
func (s *ChatService) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
