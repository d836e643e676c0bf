package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type scopeKey struct{}

// Scope resolves the caller's user.Scope from the access token claims once
// per request.
func Scope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		userID, _ := claims["user_id"].(string)
		role, _ := claims["role"].(string)
		if userID == "" || !user.Role(role).IsValid() {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		var site *string
		if s, ok := claims["site_location"].(string); ok && s != "" {
			site = &s
		}

		ctx := context.WithValue(r.Context(), scopeKey{}, user.NewScope(userID, user.Role(role), site))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ScopeFromContext returns the scope stored by Scope.
func ScopeFromContext(ctx context.Context) (user.Scope, bool) {
	scope, ok := ctx.Value(scopeKey{}).(user.Scope)
	return scope, ok
}
