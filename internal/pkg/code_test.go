package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, CodeInternalError, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSentinelsMatchWithErrorsIs(t *testing.T) {
	var err error = ErrPostNotFound
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}

func TestInvalidInputCarriesFields(t *testing.T) {
	err := InvalidInput([]FieldError{{Field: "title", Reason: "must be at most 100 characters"}})

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeInvalidInput, err.Code)
	assert.Len(t, err.Fields, 1)
	assert.Equal(t, "title", err.Fields[0].Field)
}
