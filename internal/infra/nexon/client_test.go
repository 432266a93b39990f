package nexon

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maplehub/config"
	"maplehub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) service.MapleClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&config.Config{
		Nexon: &config.NexonConfig{
			APIKey:  "test-key",
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
		},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func TestNew_RequiresAPIKey(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := New(&config.Config{}, logger)
	assert.Error(t, err)

	_, err = New(&config.Config{Nexon: &config.NexonConfig{}}, logger)
	assert.Error(t, err)
}

func TestFetch_SetsHeadersAndEncodesQuery(t *testing.T) {
	var gotKey, gotAccept, gotQuery string

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-nxopen-api-key")
		gotAccept = r.Header.Get("accept")
		gotQuery = r.URL.Query().Get("character_name")
		w.Write([]byte(`{"ok":true}`))
	}))

	// Reserved characters in the name must survive the query encoding.
	payload, err := client.Fetch(context.Background(), "/character/basic", map[string]string{
		"character_name": "헌터&쿤 #1",
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(payload))
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "헌터&쿤 #1", gotQuery)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"name":"OPENAPI00007"}}`))
	}))

	payload, err := client.Fetch(context.Background(), "/character/basic", nil)

	assert.Nil(t, payload)

	var reqErr *service.UpstreamRequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusTooManyRequests, reqErr.StatusCode)
	assert.Equal(t, "/character/basic", reqErr.Endpoint)
	assert.Contains(t, reqErr.Body, "OPENAPI00007")
}

func TestFetch_MalformedBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))

	payload, err := client.Fetch(context.Background(), "/character/stat", nil)

	assert.Nil(t, payload)

	var malformedErr *service.UpstreamMalformedError
	require.True(t, errors.As(err, &malformedErr))
	assert.Equal(t, "/character/stat", malformedErr.Endpoint)
}

func TestResolveOCID_Success(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/id", r.URL.Path)
		assert.Equal(t, "TestHero", r.URL.Query().Get("character_name"))
		w.Write([]byte(`{"ocid":"abc123"}`))
	}))

	ocid, err := client.ResolveOCID(context.Background(), "TestHero")

	require.NoError(t, err)
	assert.Equal(t, "abc123", ocid)
}

func TestResolveOCID_EmptyIdentifier(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	ocid, err := client.ResolveOCID(context.Background(), "Ghost")

	assert.Empty(t, ocid)

	var lookupErr *service.UpstreamLookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "Ghost", lookupErr.CharacterName)
}

func TestResolveOCID_UpstreamFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"name":"OPENAPI00004"}}`))
	}))

	ocid, err := client.ResolveOCID(context.Background(), "Ghost")

	assert.Empty(t, ocid)

	var lookupErr *service.UpstreamLookupError
	require.True(t, errors.As(err, &lookupErr))

	var reqErr *service.UpstreamRequestError
	assert.True(t, errors.As(lookupErr.Cause, &reqErr))
}
