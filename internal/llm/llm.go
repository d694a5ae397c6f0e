// Package llm defines the generation provider port and its adapters. A client
// performs exactly one outbound call per invocation; retry policy, if any,
// belongs to the caller.
package llm

import (
	"context"
	"errors"

	"specforge/internal/composer"
	"specforge/internal/spec"
)

// Failure categories. Every client error wraps exactly one of these so
// callers can branch with errors.Is.
var (
	// ErrConfiguration: required credential or endpoint missing. Raised
	// before any network attempt.
	ErrConfiguration = errors.New("llm: missing configuration")
	// ErrTransport: the provider call itself failed (network, auth, quota).
	ErrTransport = errors.New("llm: provider call failed")
	// ErrMalformedResponse: provider text did not validate against the
	// output schema, even after best-effort JSON extraction.
	ErrMalformedResponse = errors.New("llm: malformed response")
	// ErrEmptyResponse: the provider returned no text at all.
	ErrEmptyResponse = errors.New("llm: empty response")
)

// Client generates a schema-validated specification from a composed request.
type Client interface {
	Name() string
	GenerateSpec(ctx context.Context, req composer.Request) (*spec.SpecificationResult, error)
	Close() error
}
