package types

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest marks a malformed request body. Reported to the
// caller as 400 and not logged as an incident.
var ErrInvalidRequest = errors.New("invalid request")

// ConfigurationError indicates required configuration is absent
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing configuration: %s", e.Key)
}

// UpstreamFetchError indicates a remote document fetch or decode failed.
// The chat flow degrades to "no syllabus context" instead of failing.
type UpstreamFetchError struct {
	URL string
	Err error
}

func (e *UpstreamFetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *UpstreamFetchError) Unwrap() error { return e.Err }

// UpstreamLLMError indicates the model invocation failed. Fatal for
// the request, surfaced to the caller as an opaque 500.
type UpstreamLLMError struct {
	Err error
}

func (e *UpstreamLLMError) Error() string {
	return fmt.Sprintf("model invocation failed: %v", e.Err)
}

func (e *UpstreamLLMError) Unwrap() error { return e.Err }

// UnsupportedProviderError indicates the configured model provider is unknown
type UnsupportedProviderError struct {
	Provider string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported model provider: %q", e.Provider)
}
