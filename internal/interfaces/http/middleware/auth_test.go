package middleware

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devdesk/internal/infrastructure/auth"
	"devdesk/internal/interfaces/http/handlers/testutil"
	"devdesk/internal/shared/utils"
)

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15, 7)
	userID := uuid.New()

	pair, err := jwtService.Generate(userID.String(), uuid.NewString())
	require.NoError(t, err)

	expiredService := auth.NewJWTService("test-secret", -15, 7)
	expiredPair, err := expiredService.Generate(userID.String(), uuid.NewString())
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantMsg    string
	}{
		{
			name:    "missing header",
			wantMsg: "missing authorization token",
		},
		{
			name:       "no bearer prefix",
			authHeader: pair.AccessToken,
			wantMsg:    "invalid authorization header format",
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic " + pair.AccessToken,
			wantMsg:    "invalid authorization header format",
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not-a-jwt",
			wantMsg:    "invalid or expired token",
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + expiredPair.AccessToken,
			wantMsg:    "invalid or expired token",
		},
		{
			name:       "refresh token presented as access",
			authHeader: "Bearer " + pair.RefreshToken,
			wantMsg:    "invalid token type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/projects", nil)
			if tt.authHeader != "" {
				c.Request.Header.Set("Authorization", tt.authHeader)
			}

			mw := NewAuthMiddleware(jwtService, testutil.NewMockLogger())
			mw.RequireAuth()(c)

			assert.True(t, c.IsAborted())
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantMsg, resp.Error.Message)
		})
	}

	t.Run("valid access token passes through", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/projects", nil)
		c.Request.Header.Set("Authorization", "Bearer "+pair.AccessToken)

		mw := NewAuthMiddleware(jwtService, testutil.NewMockLogger())
		mw.RequireAuth()(c)

		assert.False(t, c.IsAborted())
		assert.Equal(t, http.StatusOK, w.Code)

		got, ok := c.Get(utils.ContextKeyUserID)
		require.True(t, ok)
		assert.Equal(t, userID, got.(uuid.UUID))
	})

	t.Run("malformed user id rejected", func(t *testing.T) {
		malformedPair, err := jwtService.Generate("not-a-uuid", uuid.NewString())
		require.NoError(t, err)

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/projects", nil)
		c.Request.Header.Set("Authorization", "Bearer "+malformedPair.AccessToken)

		mw := NewAuthMiddleware(jwtService, testutil.NewMockLogger())
		mw.RequireAuth()(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
