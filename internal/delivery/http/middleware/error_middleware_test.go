package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "kennel/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/99", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.Response {
	t.Helper()

	var envelope domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrUserNotFound.WrapMessage("user not found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, http.StatusNotFound, envelope.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "USER_NOT_FOUND", envelope.Error.Code)
}

func TestErrorMiddleware_WrappedAppErrorKeepsStatus(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	wrapped := errors.Wrap(domainerrors.ErrImageServiceUnavailable.WrapMessage("provider timeout"), "failed to create dog")
	m.HandleHTTPError(wrapped, c)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "IMAGE_SERVICE_UNAVAILABLE", envelope.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "HTTP_ERROR", envelope.Error.Code)
}

func TestErrorMiddleware_UnknownErrorIsOpaque(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.New("raw driver error with secrets"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", envelope.Error.Code)
	assert.NotContains(t, rec.Body.String(), "raw driver error")
}
