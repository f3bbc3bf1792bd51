package apperror

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := NewNotFoundError("invoice not found", "INV-1")
	assert.Equal(t, "not_found: invoice not found (INV-1)", err.Error())
	assert.Equal(t, http.StatusNotFound, err.Code)

	err = NewInternalError("boom")
	assert.Equal(t, "internal_error: boom", err.Error())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("invalid ticket", map[string]string{"title": "required"})
	assert.Equal(t, http.StatusUnprocessableEntity, err.Code)
	assert.Equal(t, "required", err.Fields["title"])
}

func TestAs_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", NewNotFoundError("ticket not found"))

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrorTypeNotFound, appErr.Type)
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsNotFound(fmt.Errorf("plain")))
	assert.False(t, IsNotFound(NewBadRequestError("bad")))
}
