package handlers

import (
	"net/http"

	"github.com/GlebRadaev/tradefund/internal/access"
	"github.com/GlebRadaev/tradefund/internal/handlers/httperr"
	"github.com/GlebRadaev/tradefund/pkg/auth"
	"github.com/GlebRadaev/tradefund/pkg/utils"
)

// Require lets a request through only when the caller's role may perform
// action on entity. It must run after auth.Middleware.
func Require(action access.Action, entity access.Entity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := auth.IdentityFromContext(r.Context())
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if err := access.Authorize(access.Role(id.Role), action, entity); err != nil {
				httperr.Write(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
