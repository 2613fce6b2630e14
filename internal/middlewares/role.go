package middlewares

import (
	"net/http"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
)

// RoleMiddleware returns a middleware that requires the authenticated user to
// hold at least the given role. It must run after AuthMiddleware.
func RoleMiddleware(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaimsFromContext(r.Context())
			if claims == nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if !models.HasRole(claims.Role, requiredRole) {
				logger.Log.Warnw("insufficient role",
					"userID", claims.UserID,
					"role", claims.Role,
					"required", requiredRole,
				)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
