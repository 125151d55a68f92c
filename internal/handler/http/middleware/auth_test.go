package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTokenAuth = jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)

func protectedRequest(t *testing.T, claims map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthRequired(testTokenAuth)(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	if claims != nil {
		token, _, err := testTokenAuth.Encode(claims)
		require.NoError(t, err)
		req = req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
	} else {
		req = req.WithContext(jwtauth.NewContext(req.Context(), nil, jwtauth.ErrNoTokenFound))
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	base := map[string]interface{}{
		"user_id":  "0198a001-0000-7000-8000-000000000001",
		"username": "someone",
		"role":     "User",
	}
	withType := func(v interface{}) map[string]interface{} {
		claims := map[string]interface{}{"type": v}
		for k, val := range base {
			claims[k] = val
		}
		return claims
	}

	t.Run("access token passes", func(t *testing.T) {
		w := protectedRequest(t, withType("access"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("refresh token is rejected", func(t *testing.T) {
		w := protectedRequest(t, withType("refresh"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing type claim is rejected", func(t *testing.T) {
		w := protectedRequest(t, base)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		w := protectedRequest(t, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
