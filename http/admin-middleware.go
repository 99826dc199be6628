package http

import (
	"net/http"

	"github.com/codearena/backend/auth"
	"github.com/codearena/backend/httpjson"
)

// requireAdmin rejects requests whose JWT claims lack the admin scope.
// Must run after the JWT middleware.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := auth.ClaimsFromContext(r.Context())
		if !claims.HasScope(auth.ScopeAdmin) {
			httpjson.WriteErrorJson(w,
				http.StatusText(http.StatusForbidden),
				http.StatusForbidden,
				"admin_scope_required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
