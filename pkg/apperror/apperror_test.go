package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFound("user", "5"), http.StatusNotFound},
		{"invalid input", NewInvalidInput("bad email", nil), http.StatusBadRequest},
		{"unauthorized", NewUnauthorized("no token", nil), http.StatusUnauthorized},
		{"login failed", NewLoginFailed(), http.StatusForbidden},
		{"registration failed", NewRegistrationFailed(errors.New("dup")), http.StatusInternalServerError},
		{"update failed", NewUpdateFailed(errors.New("gone")), http.StatusInternalServerError},
		{"delete failed", NewDeleteFailed(errors.New("gone")), http.StatusInternalServerError},
		{"internal", NewInternal("boom", nil), http.StatusInternalServerError},
		{"plain error", errors.New("anything"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToHTTPStatus(tt.err))
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	err := NewRegistrationFailed(errors.New("duplicate key"))
	assert.ErrorIs(t, err, ErrRegistrationFailed)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestAppError_JSONBodyOmitsDetails(t *testing.T) {
	err := NewInternal("SELECT blew up: syntax error near FROM", errors.New("pq: boom"))
	body := err.ToJSON()

	assert.Equal(t, ErrInternal.Error(), body["error"])
	for _, v := range body {
		assert.NotContains(t, v, "syntax error")
		assert.NotContains(t, v, "pq:")
	}
}
