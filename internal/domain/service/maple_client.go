// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"
	"encoding/json"
	"fmt"
)

// MapleClient abstracts the Nexon Open API transport. One call maps to one
// outbound request; there is no caching and no retry at this layer.
type MapleClient interface {
	// ResolveOCID maps a character name to the provider's opaque stable
	// identifier. The mapping is not guaranteed stable across provider-side
	// renames, so it is resolved fresh per lookup.
	ResolveOCID(ctx context.Context, characterName string) (string, error)

	// Fetch issues one GET against the given endpoint path with the supplied
	// query parameters and returns the raw JSON payload.
	Fetch(ctx context.Context, path string, params map[string]string) (json.RawMessage, error)
}

// UpstreamRequestError reports a non-2xx answer from the provider. The body is
// kept verbatim for diagnostics.
type UpstreamRequestError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *UpstreamRequestError) Error() string {
	return fmt.Sprintf("upstream request %s failed (%d): %s", e.Endpoint, e.StatusCode, e.Body)
}

// UpstreamMalformedError reports a 2xx answer whose body could not be parsed as JSON.
type UpstreamMalformedError struct {
	Endpoint string
	Body     string
}

func (e *UpstreamMalformedError) Error() string {
	return fmt.Sprintf("upstream response from %s is not valid JSON: %s", e.Endpoint, e.Body)
}

// UpstreamLookupError reports a failed or empty identity resolution.
type UpstreamLookupError struct {
	CharacterName string
	Cause         error
}

func (e *UpstreamLookupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ocid lookup for %q failed: %v", e.CharacterName, e.Cause)
	}

	return fmt.Sprintf("ocid lookup for %q returned no identifier", e.CharacterName)
}

func (e *UpstreamLookupError) Unwrap() error {
	return e.Cause
}
