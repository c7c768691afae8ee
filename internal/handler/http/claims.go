package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/auth"
)

// userIDFromRequest pulls the authenticated account ID out of the verified
// token claims. AuthRequired has already run on these routes, so a failure
// here means the token carries no usable subject.
func userIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}
