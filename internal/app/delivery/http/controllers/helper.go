package controllers

import (
	"net/http"
	"strconv"

	"medibridge-service/internal/pkg/constvars"
	"medibridge-service/internal/pkg/exceptions"
	"medibridge-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func claimsFromRequest(r *http.Request) (*utils.TokenClaims, error) {
	claims, ok := r.Context().Value(constvars.CONTEXT_AUTH_CLAIMS_KEY).(*utils.TokenClaims)
	if !ok {
		return nil, exceptions.ErrTokenMissing(nil)
	}
	return claims, nil
}

func uintURLParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, exceptions.ErrURLParamValidation(err, name)
	}
	return uint(value), nil
}

func intQueryParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
