package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(ErrTaskNotFound))
	assert.Equal(t, http.StatusBadRequest, StatusCode(fmt.Errorf("bind: %w", ErrInvalidJSON)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("disk on fire")))
}

func TestWrap(t *testing.T) {
	cause := errors.New("cannot transition from Completed to Pending")
	err := ErrInvalidTransition.Wrap(cause)

	assert.Equal(t, http.StatusBadRequest, StatusCode(err))
	assert.Equal(t, cause.Error(), Message(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "invalid status transition", ErrInvalidTransition.Message, "sentinel must not be mutated")
}

func TestMessage_UnknownError(t *testing.T) {
	assert.Equal(t, "Internal Server Error", Message(errors.New("boom")))
}
