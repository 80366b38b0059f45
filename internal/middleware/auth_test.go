package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive-dev/taskhive/internal/domain"
	jwt_internal "github.com/taskhive-dev/taskhive/internal/jwt"
)

func TestRequireAuth(t *testing.T) {
	jwtService, err := jwt_internal.New("test_secret", time.Hour)
	require.NoError(t, err)
	expiredService, err := jwt_internal.New("test_secret", -time.Minute)
	require.NoError(t, err)

	user := domain.User{Id: "user-1", Email: "test@example.com"}
	token, err := jwtService.NewToken(user)
	require.NoError(t, err)
	expiredToken, err := expiredService.NewToken(user)
	require.NoError(t, err)

	tests := []struct {
		name             string
		authorization    string
		expectedStatus   int
		expectedIdentity domain.Identity
	}{
		{
			name:             "valid token",
			authorization:    "Bearer " + token,
			expectedStatus:   http.StatusOK,
			expectedIdentity: domain.Identity{UserId: "user-1", Email: "test@example.com"},
		},
		{
			name:           "no header",
			authorization:  "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not a bearer scheme",
			authorization:  "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty bearer",
			authorization:  "Bearer ",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authorization:  "Bearer invalid_token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authorization:  "Bearer " + expiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "http://example.com/tasks", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rr := httptest.NewRecorder()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				identity, ok := IdentityFromContext(r)
				require.True(t, ok, "RequireAuth should always propagate identity thru context")
				assert.Equal(t, tt.expectedIdentity, identity)
				w.WriteHeader(http.StatusOK)
			})

			NewAuth(jwtService).RequireAuth()(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code, "handler returned wrong status code")
		})
	}
}

func TestIdentityFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.com", nil)

	_, ok := IdentityFromContext(req)
	assert.False(t, ok)
}
