// Package chat isolates the external chat-completion API behind a narrow
// capability interface so the orchestrator and tests never touch the network
// directly.
package chat

import (
	"context"

	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/config"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/types"
)

// Chat sends an ordered message list to the model and returns its single
// text reply
type Chat interface {
	Chat(ctx context.Context, messages []types.Message) (string, error)
}

// New resolves the configured provider. An unknown provider yields a client
// whose calls fail with UnsupportedProviderError, so the misconfiguration
// surfaces as a request-time 500 instead of preventing startup.
func New(cfg *config.Config) Chat {
	switch cfg.ModelProvider {
	case config.ProviderOpenAI:
		return NewOpenAIChat(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		return &unsupported{provider: cfg.ModelProvider}
	}
}

type unsupported struct {
	provider string
}

func (u *unsupported) Chat(ctx context.Context, messages []types.Message) (string, error) {
	return "", &types.UnsupportedProviderError{Provider: u.provider}
}
