// Package nexon implements the Nexon Open API client used by the lookup usecases.
package nexon

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"maplehub/config"
	"maplehub/internal/domain/service"

	"github.com/pkg/errors"
)

const apiKeyHeader = "x-nxopen-api-key"

// client implements service.MapleClient over plain HTTP. Every call is a fresh
// round trip: no caching, no retry. The only bound is the transport timeout.
type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates the Nexon Open API client from configuration.
func New(cfg *config.Config, logger *slog.Logger) (service.MapleClient, error) {
	if cfg.Nexon == nil || cfg.Nexon.APIKey == "" {
		return nil, errors.New("nexon api key must be provided")
	}

	timeout := cfg.Nexon.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &client{
		baseURL: strings.TrimSuffix(cfg.Nexon.BaseURL, "/"),
		apiKey:  cfg.Nexon.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// ResolveOCID maps a character name to the provider's opaque identifier.
func (c *client) ResolveOCID(ctx context.Context, characterName string) (string, error) {
	payload, err := c.Fetch(ctx, "/id", map[string]string{"character_name": characterName})
	if err != nil {
		return "", &service.UpstreamLookupError{CharacterName: characterName, Cause: err}
	}

	var body struct {
		OCID string `json:"ocid"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || body.OCID == "" {
		return "", &service.UpstreamLookupError{CharacterName: characterName, Cause: err}
	}

	return body.OCID, nil
}

// Fetch issues one GET against the given endpoint path. Query parameters are
// built through url.Values so reserved characters in character names survive
// the trip intact.
func (c *client) Fetch(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}

	endpoint := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	c.logger.Debug("Fetching Nexon endpoint", slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request to %s failed", path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read response from %s", path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &service.UpstreamRequestError{
			StatusCode: resp.StatusCode,
			Endpoint:   path,
			Body:       string(body),
		}
	}

	if !json.Valid(body) {
		return nil, &service.UpstreamMalformedError{
			Endpoint: path,
			Body:     string(body),
		}
	}

	return json.RawMessage(body), nil
}
