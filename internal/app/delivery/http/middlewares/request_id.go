package middlewares

import (
	"context"
	"net/http"

	"medibridge-service/internal/pkg/constvars"
	"medibridge-service/internal/pkg/utils"
)

// RequestID honours a client-supplied X-Request-Id and generates one otherwise.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderRequestID)
		if requestID == "" {
			requestID = utils.GenerateRequestID()
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		w.Header().Set(constvars.HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
