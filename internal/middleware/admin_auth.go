package middleware

import (
	"net/http"

	"postpilot-api/internal/services"
)

const AdminSessionCookie = "admin_session"

// AdminMiddleware guards the admin surface behind the admin_session cookie
// issued by the admin login endpoint.
func AdminMiddleware(tokenService *services.AdminTokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(AdminSessionCookie)
			if err != nil || !tokenService.ValidateToken(cookie.Value) {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
