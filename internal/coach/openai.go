package coach

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"go.uber.org/zap"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o-mini"
	// DefaultBaseURL is the default OpenAI API base URL.
	DefaultBaseURL = "https://api.openai.com/v1"
	// DefaultTimeout bounds every API call.
	DefaultTimeout = 30 * time.Second
)

// OpenAIProvider implements Provider against the OpenAI chat completions API.
type OpenAIProvider struct {
	client openai.Client
	model  string
	log    *zap.Logger
}

// NewOpenAIProvider builds the provider. An empty apiKey is an error the
// caller should have prevented by checking configuration first.
func NewOpenAIProvider(apiKey, baseURL, model string, log *zap.Logger) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithHTTPClient(&http.Client{Timeout: DefaultTimeout}),
	)

	return &OpenAIProvider{client: client, model: model, log: log}, nil
}

func (p *OpenAIProvider) Chat(ctx context.Context, history []Message, stats Stats) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	messages = append(messages, openai.SystemMessage(systemPrompt(stats)))
	for _, msg := range history {
		switch msg.Role {
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	return p.complete(ctx, "chat", messages)
}

func (p *OpenAIProvider) GeneratePlan(ctx context.Context, stats Stats) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt(stats)),
		openai.UserMessage(planPrompt(stats)),
	}

	return p.complete(ctx, "generate_plan", messages)
}

func (p *OpenAIProvider) complete(ctx context.Context, operation string, messages []openai.ChatCompletionMessageParamUnion) (string, error) {
	req := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(p.model),
		Messages: messages,
	}

	start := time.Now()
	resp, err := p.client.Chat.Completions.New(ctx, req)
	latency := time.Since(start)

	if err != nil {
		p.log.Debug("llm_api_error",
			zap.String("operation", operation),
			zap.String("model", p.model),
			zap.Int64("latency_ms", latency.Milliseconds()),
			zap.Error(err),
		)
		return "", fmt.Errorf("coach request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("coach: no choices in response")
	}

	content := resp.Choices[0].Message.Content
	p.log.Debug("llm_api_response",
		zap.String("operation", operation),
		zap.String("model", p.model),
		zap.Int("response_length", len(content)),
		zap.Int64("latency_ms", latency.Milliseconds()),
	)
	return content, nil
}
