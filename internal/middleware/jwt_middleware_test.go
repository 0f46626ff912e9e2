package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runProtected(t *testing.T, authHeader string) (*httptest.ResponseRecorder, *Claims) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *Claims
	handler := JWTMiddleware()(func(c echo.Context) error {
		got = GetClaims(c)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, got
}

func TestJWTMiddlewareRoundTrip(t *testing.T) {
	token, err := GenerateToken("u1", "alex@example.com", "acc1", 1)
	require.NoError(t, err)

	rec, claims := runProtected(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, claims)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "alex@example.com", claims.Email)
	assert.Equal(t, "acc1", claims.AccountID)
}

func TestJWTMiddlewareRejects(t *testing.T) {
	expired, err := GenerateToken("u1", "alex@example.com", "acc1", -1)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, claims := runProtected(t, tc.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, claims)
		})
	}
}

func TestGetClaimsWithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, GetClaims(c))
}
