package provider

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI streams chat completions through the OpenAI Chat Completions
// API.
type OpenAI struct {
	client openai.Client
}

// NewOpenAI creates a provider with the given API key.
func NewOpenAI(apiKey string) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}
}

// Name implements Provider.
func (p *OpenAI) Name() string { return "openai" }

// Stream implements Provider.
func (p *OpenAI) Stream(ctx context.Context, req Request) (*Session, error) {
	ctx, cancel := context.WithCancel(ctx)

	var messages []openai.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Message))

	stream := p.client.Chat.Completions.NewStreaming(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: messages,
	})
	session := NewSession(cancel)

	go func() {
		defer session.Close()
		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) > 0 {
				session.Emit(chunk.Choices[0].Delta.Content)
			}
		}
		if err := stream.Err(); err != nil {
			session.Fail(err)
		}
	}()

	return session, nil
}
