package dogapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kennel/config"
	domainerrors "kennel/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{DogAPI: &config.DogAPIConfig{
		BaseURL: server.URL,
		Timeout: time.Second,
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClient(cfg, logger).(*client)
}

func TestClient_FetchRandomImageURL_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/breeds/image/random", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"https://images.dog.ceo/breeds/hound/n02089973_612.jpg","status":"success"}`))
	})

	url, err := c.FetchRandomImageURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://images.dog.ceo/breeds/hound/n02089973_612.jpg", url)
}

func TestClient_FetchRandomImageURL_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.FetchRandomImageURL(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrImageServiceUnavailable)
}

func TestClient_FetchRandomImageURL_MalformedPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	})

	_, err := c.FetchRandomImageURL(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrImageServiceUnavailable)
}

func TestClient_FetchRandomImageURL_MissingURL(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"","status":"error"}`))
	})

	_, err := c.FetchRandomImageURL(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrImageServiceUnavailable)
}

func TestClient_FetchRandomImageURL_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	cfg := &config.Config{DogAPI: &config.DogAPIConfig{
		BaseURL: server.URL,
		Timeout: time.Second,
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewClient(cfg, logger)

	_, err := c.FetchRandomImageURL(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrImageServiceUnavailable)
}
