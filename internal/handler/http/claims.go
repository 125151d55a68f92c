package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/tugasgi/attendance-backend-go/internal/domain/user"
)

// callerClaims pulls the authenticated user's identity out of the verified
// token. Routes behind AuthRequired always have one.
func callerClaims(r *http.Request) (userID string, role user.Role, ok bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", false
	}

	userID, okID := claims["user_id"].(string)
	roleStr, okRole := claims["role"].(string)
	if !okID || !okRole || userID == "" {
		return "", "", false
	}

	return userID, user.Role(roleStr), true
}
