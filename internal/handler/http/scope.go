package http

import (
	"net/http"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/handler/http/response"
)

// requestScope writes a 401 and reports false when the scope middleware did
// not run for this request.
func requestScope(w http.ResponseWriter, r *http.Request) (user.Scope, bool) {
	scope, ok := middleware.ScopeFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return user.Scope{}, false
	}
	return scope, true
}
