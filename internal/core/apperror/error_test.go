package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_WrappedLookup(t *testing.T) {
	base := NewInsufficientStock("item-1", "5", "2")
	wrapped := fmt.Errorf("apply movement: %w", base)

	got, ok := AsAppError(wrapped)
	assert.True(t, ok)
	assert.Same(t, base, got)
	assert.True(t, HasCode(wrapped, CodeInsufficientStock))
	assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus(wrapped))
}

func TestAppError_UnknownErrorIsInternal(t *testing.T) {
	err := errors.New("boom")

	assert.False(t, IsAppError(err))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(err))
}

func TestTransportFailure_KeepsUpstreamMessage(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := NewTransportFailure("pdf-renderer", "renderer unavailable", cause)

	assert.Equal(t, "renderer unavailable", err.Message)
	assert.Equal(t, http.StatusBadGateway, err.HTTPStatus)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "pdf-renderer", err.Details["collaborator"])
}

func TestWithDetail_InitializesMap(t *testing.T) {
	err := (&AppError{Code: CodeValidation}).WithDetail("field", "name")

	assert.Equal(t, "name", err.Details["field"])
}
