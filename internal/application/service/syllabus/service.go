// Package syllabus loads the course index and syllabus documents and
// decides which course a piece of conversation text refers to.
package syllabus

import (
	"context"
	"encoding/json"
	"time"

	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/application/service/cache"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/types"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/types/interfaces"
)

// Service implements the SyllabusService interface on top of the
// remote document cache
type Service struct {
	cache    *cache.Service
	fetcher  interfaces.DocumentFetcher
	indexURL string
	ttl      time.Duration
}

// NewService creates a syllabus service. indexURL may be empty, in which
// case GetIndex reports a ConfigurationError at call time.
func NewService(c *cache.Service, fetcher interfaces.DocumentFetcher, indexURL string, ttl time.Duration) *Service {
	return &Service{
		cache:    c,
		fetcher:  fetcher,
		indexURL: indexURL,
		ttl:      ttl,
	}
}

// GetIndex returns the course index, refreshing the cached document when
// its age exceeds the configured TTL
func (s *Service) GetIndex(ctx context.Context) (*types.CourseIndex, error) {
	if s.indexURL == "" {
		return nil, &types.ConfigurationError{Key: "SYLLABI_INDEX_URL"}
	}

	data, err := s.cache.GetOrFetch(ctx, s.indexURL, s.ttl, s.fetcher.Fetch)
	if err != nil {
		return nil, err
	}

	var index types.CourseIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, &types.UpstreamFetchError{URL: s.indexURL, Err: err}
	}
	return &index, nil
}

// GetSyllabusText returns the raw syllabus document at url. Each URL is
// cached independently with its own TTL clock; no JSON decoding happens here.
func (s *Service) GetSyllabusText(ctx context.Context, url string) (string, error) {
	data, err := s.cache.GetOrFetch(ctx, url, s.ttl, s.fetcher.Fetch)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
