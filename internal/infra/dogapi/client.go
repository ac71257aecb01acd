// Package dogapi implements the ImageProvider interface against the public
// dog.ceo REST API.
package dogapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"kennel/config"
	domainerrors "kennel/internal/domain/errors"
	"kennel/internal/domain/service"
)

const (
	defaultBaseURL = "https://dog.ceo/api"
	defaultTimeout = 10 * time.Second
)

// client fetches random dog picture URLs over HTTP.
type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// randomImageResponse mirrors the dog.ceo payload:
// {"message": "<image url>", "status": "success"}
type randomImageResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// NewClient is the constructor for the dog.ceo image provider.
func NewClient(cfg *config.Config, logger *slog.Logger) service.ImageProvider {
	baseURL := defaultBaseURL
	timeout := defaultTimeout
	if cfg.DogAPI != nil {
		if cfg.DogAPI.BaseURL != "" {
			baseURL = cfg.DogAPI.BaseURL
		}
		if cfg.DogAPI.Timeout > 0 {
			timeout = cfg.DogAPI.Timeout
		}
	}

	return &client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchRandomImageURL requests a random dog picture URL. Transport errors,
// non-200 responses and malformed payloads all map to the image-service
// unavailable domain error.
func (c *client) FetchRandomImageURL(ctx context.Context) (string, error) {
	url := c.baseURL + "/breeds/image/random"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", domainerrors.ErrImageServiceUnavailable.WrapMessage("failed to build image request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Dog image request failed", slog.String("url", url), slog.Any("error", err))

		return "", domainerrors.ErrImageServiceUnavailable.WrapMessage("image request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Dog image service returned non-OK status", slog.String("url", url), slog.Int("status", resp.StatusCode))

		return "", domainerrors.ErrImageServiceUnavailable.WrapMessage("image service returned " + resp.Status)
	}

	var payload randomImageResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", domainerrors.ErrImageServiceUnavailable.WrapMessage("failed to decode image response")
	}

	if payload.Message == "" {
		return "", domainerrors.ErrImageServiceUnavailable.WrapMessage("image response missing url")
	}

	return payload.Message, nil
}
