package chat

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/types"
)

// OpenAIChat implements the Chat interface against the OpenAI
// chat-completion API
type OpenAIChat struct {
	client *openai.Client
	model  string
}

// NewOpenAIChat creates an OpenAI-backed chat client
func NewOpenAIChat(apiKey, model string) *OpenAIChat {
	return &OpenAIChat{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Chat sends the ordered message list and returns the first choice's content.
// Any failure is reported as UpstreamLLMError; there is no retry.
func (c *OpenAIChat) Chat(ctx context.Context, messages []types.Message) (string, error) {
	outbound := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		outbound[i] = openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: outbound,
	})
	if err != nil {
		return "", &types.UpstreamLLMError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &types.UpstreamLLMError{Err: errors.New("completion returned no choices")}
	}
	return resp.Choices[0].Message.Content, nil
}
