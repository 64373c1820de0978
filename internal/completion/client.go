package completion

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/Rorical/RoriChat/internal/models"
)

// Request is everything one completion call needs.
type Request struct {
	Model      models.ModelID
	Credential string
	Messages   []models.Message
}

// Client returns the text of a single completion, or an *Error.
// Implementations must honour ctx cancellation.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// OpenAIClient talks to any OpenAI-compatible chat completion endpoint; by
// default the Qianfan v2 API.
type OpenAIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOpenAIClient(baseURL string, timeout time.Duration) *OpenAIClient {
	return &OpenAIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	// The credential may change between requests, so the client is built per call.
	clientConfig := openai.DefaultConfig(req.Credential)
	if c.baseURL != "" {
		clientConfig.BaseURL = c.baseURL
	}
	clientConfig.HTTPClient = c.httpClient
	client := openai.NewClientWithConfig(clientConfig)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    string(req.Model),
		Messages: toOpenAIMessages(req.Messages),
	})
	if err != nil {
		return "", classify(fmt.Errorf("chat completion: %w", err))
	}

	if len(resp.Choices) == 0 {
		return "", &Error{Kind: KindMalformed, Err: ErrEmptyResponse}
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", &Error{Kind: KindMalformed, Err: ErrEmptyResponse}
	}
	return content, nil
}

// toOpenAIMessages converts the history snapshot, dropping error-tagged turns
// which were never produced by the model.
func toOpenAIMessages(messages []models.Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.Err {
			continue
		}
		role := openai.ChatMessageRoleUser
		if msg.Role == models.Assistant {
			role = openai.ChatMessageRoleAssistant
		}
		result = append(result, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Text,
		})
	}
	return result
}
