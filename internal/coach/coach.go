// Package coach wraps the upstream language-model API behind a small session
// service. Failures never propagate as crashes: the caller shows the
// degraded messages below in place of a reply, and tracker state is
// untouched.
package coach

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Canned user-visible messages for the chat panel.
const (
	Greeting = "Hello! I am your personal health coach. How can I help you today?"

	NotConfiguredMessage = "Please set OPENAI_API_KEY in your environment to use the AI coach."

	DegradedMessage = "Sorry, I encountered an error connecting to the AI. Please check your API key and try again."
)

// Session is one in-memory conversation. Nothing is persisted; a new process
// starts a fresh session.
type Session struct {
	ID       uuid.UUID
	Messages []Message
}

// Coach drives a chat session against a Provider.
type Coach struct {
	provider Provider
	session  *Session
	log      *zap.Logger
}

func New(provider Provider, log *zap.Logger) *Coach {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coach{
		provider: provider,
		session:  &Session{ID: uuid.New()},
		log:      log,
	}
}

// Session exposes the conversation so far.
func (c *Coach) Session() *Session { return c.session }

// Send records the user message, asks the provider for a reply with the
// stats context, and records the reply. On provider failure the user message
// stays in the history (it was said) and the error is returned for the
// caller to render as a degraded inline message.
func (c *Coach) Send(ctx context.Context, text string, stats Stats) (string, error) {
	c.session.Messages = append(c.session.Messages, Message{Role: RoleUser, Content: text})

	reply, err := c.provider.Chat(ctx, c.session.Messages, stats)
	if err != nil {
		c.log.Warn("coach chat failed", zap.String("session", c.session.ID.String()), zap.Error(err))
		return "", err
	}

	c.session.Messages = append(c.session.Messages, Message{Role: RoleAssistant, Content: reply})
	return reply, nil
}

// GeneratePlan asks the provider for a fresh plan suggestion. Pure
// passthrough plus logging; it never mutates tracker state.
func (c *Coach) GeneratePlan(ctx context.Context, stats Stats) (string, error) {
	text, err := c.provider.GeneratePlan(ctx, stats)
	if err != nil {
		c.log.Warn("plan generation failed", zap.Error(err))
		return "", err
	}
	return text, nil
}
