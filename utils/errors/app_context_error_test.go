package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppContextError_HTTPStatusCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeCursor, http.StatusBadRequest},
		{CodeFilterValidation, http.StatusBadRequest},
		{CodeUnprocessable, http.StatusUnprocessableEntity},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeRateLimit, http.StatusTooManyRequests},
		{CodeTimeout, http.StatusGatewayTimeout},
		{CodeDatabase, http.StatusInternalServerError},
		{CodeUnknown, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := NewAppContextError(tt.code, "msg", "rest", "Handler", "op", nil, nil)
			assert.Equal(t, tt.want, err.HTTPStatusCode())
		})
	}
}

func TestAppContextError_SafeMessage(t *testing.T) {
	cause := fmt.Errorf("pq: relation \"content_items_all\" does not exist")

	dbErr := NewDatabaseContextError("failed to list content", "gateway", "ListContentGateway", "ListContent", cause, nil)
	assert.Equal(t, "internal server error", dbErr.ToSecureHTTPResponse().Message)
	assert.NotContains(t, dbErr.ToSecureHTTPResponse().Message, "content_items_all")

	filterErr := NewFilterValidationContextError(`invalid content source type "bogus"`, "rest", "ContentHandler", "list", nil, nil)
	assert.Equal(t, `invalid content source type "bogus"`, filterErr.ToSecureHTTPResponse().Message)

	timeoutErr := NewTimeoutContextError("statement timeout", "gateway", "ListContentGateway", "ListContent", cause, nil)
	assert.Contains(t, timeoutErr.SafeMessage(), "took too long")
}

func TestAppContextError_UnwrapAndEnrich(t *testing.T) {
	root := errors.New("root")
	err := NewDatabaseContextError("db", "driver", "Repo", "Query", root, map[string]interface{}{"a": 1})

	assert.ErrorIs(t, err, root)
	assert.Equal(t, "database", err.Context["error_type"])
	assert.NotEmpty(t, err.ErrorID)

	enriched := EnrichWithContext(err, "rest", "Handler", "list", map[string]interface{}{"path": "/v1/contents"})
	assert.Equal(t, err.ErrorID, enriched.ErrorID)
	assert.Equal(t, 1, enriched.Context["a"])
	assert.Equal(t, "/v1/contents", enriched.Context["path"])
	assert.Contains(t, enriched.Error(), "[rest:Handler:list]")

	wrapped := fmt.Errorf("outer: %w", enriched)
	found, ok := AsAppContextError(wrapped)
	require.True(t, ok)
	assert.Equal(t, enriched, found)
}

func TestSentinels(t *testing.T) {
	assert.True(t, IsTimeoutError(fmt.Errorf("%w: slow", ErrOperationTimeout)))
	assert.True(t, IsDatabaseError(fmt.Errorf("%w", ErrDatabaseUnavailable)))
	assert.True(t, IsValidationError(ErrInvalidInput))
	assert.False(t, IsTimeoutError(errors.New("other")))
}
