package interfaces

import (
	"context"

	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/types"
)

// ChatService coordinates a single chat request end to end
type ChatService interface {
	// Chat runs course detection and context assembly for the conversation
	// and returns either the model's reply or a clarification question
	Chat(ctx context.Context, messages []types.Message) (string, error)
}

// SyllabusService loads and caches the course index and syllabus documents
type SyllabusService interface {
	// GetIndex returns the cached course index, refreshing it when stale
	GetIndex(ctx context.Context) (*types.CourseIndex, error)

	// GetSyllabusText returns the raw syllabus document at url, cached per URL
	GetSyllabusText(ctx context.Context, url string) (string, error)
}

// DocumentFetcher retrieves a remote document over plain HTTP GET
type DocumentFetcher interface {
	// Fetch returns the response body, failing on any non-2xx status
	Fetch(ctx context.Context, url string) ([]byte, error)
}
