package coach

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned before any network call when no API key is
// set; callers show a configuration prompt instead of attempting the call.
var ErrNotConfigured = errors.New("coach: OPENAI_API_KEY is not configured")

// Role values for chat messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the coach conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Stats is the user-metric context sent alongside every prompt.
type Stats struct {
	Steps       int
	Calories    int
	WaterLiters float64
	Sleep       string
}

// Provider is the upstream language-model API boundary.
type Provider interface {
	// Chat replays the conversation plus the stats context and returns the
	// coach's reply.
	Chat(ctx context.Context, history []Message, stats Stats) (string, error)

	// GeneratePlan asks for a fresh workout/diet plan suggestion as text.
	GeneratePlan(ctx context.Context, stats Stats) (string, error)
}
