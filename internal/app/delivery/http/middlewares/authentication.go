package middlewares

import (
	"context"
	"net/http"
	"strings"

	"medibridge-service/internal/pkg/constvars"
	"medibridge-service/internal/pkg/exceptions"
	"medibridge-service/internal/pkg/utils"
)

// Authenticate parses the bearer token, rejects revoked tokens, and stores
// the claims on the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		revoked, err := m.AuthUsecase.IsTokenRevoked(r.Context(), claims.ID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if revoked {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenRevoked(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_AUTH_CLAIMS_KEY, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles gates a route to the given role set. It must run after
// Authenticate.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(constvars.CONTEXT_AUTH_CLAIMS_KEY).(*utils.TokenClaims)
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
				return
			}
			if !allowed[claims.Role] {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromContext returns the authenticated claims set by Authenticate.
func ClaimsFromContext(ctx context.Context) (*utils.TokenClaims, bool) {
	claims, ok := ctx.Value(constvars.CONTEXT_AUTH_CLAIMS_KEY).(*utils.TokenClaims)
	return claims, ok
}
