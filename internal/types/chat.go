package types

import "fmt"

// MessageRole identifies which side of the conversation a message belongs to
type MessageRole string

const (
	// MessageRoleSystem marks injected instruction messages
	MessageRoleSystem MessageRole = "system"
	// MessageRoleUser marks user-authored turns
	MessageRoleUser MessageRole = "user"
	// MessageRoleAssistant marks model-authored turns
	MessageRoleAssistant MessageRole = "assistant"
)

// Message is a single ordered entry in a conversation
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// Validate checks that both required fields are present and the role is known
func (m Message) Validate() error {
	switch m.Role {
	case MessageRoleSystem, MessageRoleUser, MessageRoleAssistant:
	default:
		return fmt.Errorf("%w: unsupported role %q", ErrInvalidRequest, m.Role)
	}
	if m.Content == "" {
		return fmt.Errorf("%w: message content is empty", ErrInvalidRequest)
	}
	return nil
}

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Messages []Message `json:"messages"`
}

// Validate checks that the conversation is a well-formed ordered message sequence
func (r ChatRequest) Validate() error {
	if len(r.Messages) == 0 {
		return fmt.Errorf("%w: empty conversation", ErrInvalidRequest)
	}
	for i, msg := range r.Messages {
		if err := msg.Validate(); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
	}
	return nil
}

// ChatReply is the body of a successful POST /api/chat response
type ChatReply struct {
	Reply string `json:"reply"`
}

// LastUserText returns the content of the last user-authored message,
// or "" when the conversation has none
func LastUserText(messages []Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == MessageRoleUser {
			return messages[i].Content
		}
	}
	return ""
}
