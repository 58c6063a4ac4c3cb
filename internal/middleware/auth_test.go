package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTAuth(t *testing.T) {
	const secret = "test-secret"
	protected := JWTAuth(secret)(okHandler())

	valid := signToken(t, secret, jwt.MapClaims{"sub": "ops", "exp": time.Now().Add(time.Hour).Unix()})
	expired := signToken(t, secret, jwt.MapClaims{"sub": "ops", "exp": time.Now().Add(-time.Hour).Unix()})
	wrongKey := signToken(t, "other-secret", jwt.MapClaims{"sub": "ops", "exp": time.Now().Add(time.Hour).Unix()})
	noExpiry := signToken(t, secret, jwt.MapClaims{"sub": "ops"})

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{name: "valid token", header: "Bearer " + valid, code: http.StatusOK},
		{name: "missing header", header: "", code: http.StatusUnauthorized},
		{name: "not a bearer scheme", header: "Basic abc123", code: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not.a.token", code: http.StatusUnauthorized},
		{name: "wrong signing key", header: "Bearer " + wrongKey, code: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer " + expired, code: http.StatusUnauthorized},
		{name: "no expiry claim", header: "Bearer " + noExpiry, code: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestWebhookSecret(t *testing.T) {
	t.Run("no secret configured skips the check", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/notifications", nil)
		rec := httptest.NewRecorder()

		WebhookSecret("")(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/notifications", nil)
		rec := httptest.NewRecorder()

		WebhookSecret("shh")(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/notifications", nil)
		req.Header.Set("X-Webhook-Secret", "guess")
		rec := httptest.NewRecorder()

		WebhookSecret("shh")(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("matching secret passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/notifications", nil)
		req.Header.Set("X-Webhook-Secret", "shh")
		rec := httptest.NewRecorder()

		WebhookSecret("shh")(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
