package provider

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// maxResponseTokens bounds a single streamed reply.
const maxResponseTokens = 4096

// Anthropic streams chat completions through the Anthropic Messages
// API.
type Anthropic struct {
	client anthropic.Client
}

// NewAnthropic creates a provider with the given API key.
func NewAnthropic(apiKey string) *Anthropic {
	return &Anthropic{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}
}

// Name implements Provider.
func (p *Anthropic) Name() string { return "anthropic" }

// Stream implements Provider.
func (p *Anthropic) Stream(ctx context.Context, req Request) (*Session, error) {
	ctx, cancel := context.WithCancel(ctx)

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: maxResponseTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Message)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	stream := p.client.Messages.NewStreaming(ctx, params)
	session := NewSession(cancel)

	go func() {
		defer session.Close()
		for stream.Next() {
			event := stream.Current()
			switch ev := event.AsAny().(type) {
			case anthropic.ContentBlockDeltaEvent:
				switch delta := ev.Delta.AsAny().(type) {
				case anthropic.TextDelta:
					session.Emit(delta.Text)
				}
			}
		}
		if err := stream.Err(); err != nil {
			session.Fail(err)
		}
	}()

	return session, nil
}
