package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Unauthorized("no"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{Validation("bad input"), http.StatusBadRequest},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("taken"), http.StatusConflict},
		{Internal("boom", errors.New("pg down")), http.StatusInternalServerError},
		{errors.New("raw driver error"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(NotFound("gone")))
	assert.True(t, IsAppError(fmt.Errorf("wrapped: %w", Conflict("taken"))))
	assert.False(t, IsAppError(errors.New("connection refused")))
	assert.False(t, IsAppError(nil))
}

func TestMessageHidesUnclassified(t *testing.T) {
	assert.Equal(t, "taken", Message(Conflict("taken")))
	assert.Equal(t, "internal server error", Message(errors.New("pq: relation orders does not exist")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("pg down")
	err := Internal("query failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "query failed", err.Error())
}
