package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tugasgi/attendance-backend-go/internal/domain/auth"
	"github.com/tugasgi/attendance-backend-go/internal/pkg/jwt"
)

// stubAuthService mengembalikan hasil tetap agar handler bisa diuji tanpa DB.
type stubAuthService struct {
	tokens  auth.TokenResponse
	err     error
	revoked string
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if s.err != nil {
		return auth.TokenResponse{}, s.err
	}
	return s.tokens, nil
}

func (s *stubAuthService) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if s.err != nil {
		return auth.AccessTokenResponse{}, s.err
	}
	return auth.AccessTokenResponse{AccessToken: "new-access-token"}, nil
}

func (s *stubAuthService) Logout(ctx context.Context, refreshToken string) error {
	s.revoked = refreshToken
	return s.err
}

func newAuthTestHandler(svc auth.AuthService) AuthHandler {
	jwtSvc := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	return NewAuthHandler(svc, jwtSvc)
}

func TestLogin_SetsRefreshCookie(t *testing.T) {
	svc := &stubAuthService{
		tokens: auth.TokenResponse{
			AccessToken:      "access-token",
			RefreshToken:     "refresh-token",
			UserID:           testUserID,
			Username:         "budi",
			FullName:         "Budi Santoso",
			Role:             "User",
			RefreshExpiresAt: 1893456000,
		},
	}
	handler := newAuthTestHandler(svc)

	body, _ := json.Marshal(map[string]string{"username": "budi", "password": "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "refresh_token", cookies[0].Name)
	assert.Equal(t, "refresh-token", cookies[0].Value)
	assert.Equal(t, "/api/v1/auth", cookies[0].Path)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	handler := newAuthTestHandler(&stubAuthService{err: auth.ErrInvalidCredentials})

	body, _ := json.Marshal(map[string]string{"username": "budi", "password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestRefreshToken_PrefersCookie(t *testing.T) {
	handler := newAuthTestHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "cookie-token"})
	w := httptest.NewRecorder()

	handler.RefreshToken(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
}

func TestRefreshToken_InvalidToken(t *testing.T) {
	handler := newAuthTestHandler(&stubAuthService{err: auth.ErrInvalidToken})

	body, _ := json.Marshal(map[string]string{"refresh_token": "expired"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.RefreshToken(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_RevokesAndClearsCookie(t *testing.T) {
	svc := &stubAuthService{}
	handler := newAuthTestHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "the-refresh-token"})
	w := httptest.NewRecorder()

	handler.Logout(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "the-refresh-token", svc.revoked)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "refresh_token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
