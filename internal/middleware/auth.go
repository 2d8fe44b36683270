package middleware

import (
	"net/http"
	"strings"

	"github.com/weiheng-lim/gamehub-be/internal/auth"
	"github.com/weiheng-lim/gamehub-be/internal/http/respond"
)

const bearerPrefix = "Bearer "

// RequireAuth guards a handler behind bearer-token verification. A missing
// header or wrong scheme is 403; a token that fails verification is 401.
// On success the decoded identity rides the request context. Token contents
// are never logged.
func RequireAuth(tokens *auth.TokenManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			respond.Error(w, http.StatusForbidden, "Token not provided or invalid")
			return
		}
		claims, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, "Failed to authenticate token")
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), claims)))
	})
}
