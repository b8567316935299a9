package middleware

import (
	"net/http"

	"github.com/brave-intl/airdrop-go/libs/access"
)

// RoleAuthorizedOnly is a middleware that restricts access to requests whose
// bearer token holds role according to the provided capability
// NOTE the bearer token is populated via BearerToken
func RoleAuthorizedOnly(capability access.Capability, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := BearerTokenFromContext(r.Context())
			if !capability.HasRole(r.Context(), caller, role) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
