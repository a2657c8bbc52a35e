package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/fadeline/booking-service/internal/api/handlers"
)

// ClientRefHeader identifies the calling client. Authentication itself
// lives in the gateway; this middleware only enforces presence and
// threads the value to handlers.
const ClientRefHeader = "X-Client-Ref"

type contextKey string

const clientRefKey contextKey = "clientRef"

// Auth requires the client reference header on protected routes.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientRef := strings.TrimSpace(r.Header.Get(ClientRefHeader))
		if clientRef == "" {
			handlers.RespondUnauthorized(w, "missing "+ClientRefHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), clientRefKey, clientRef)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientRef returns the client reference stored by Auth.
func GetClientRef(ctx context.Context) (string, bool) {
	clientRef, ok := ctx.Value(clientRefKey).(string)
	return clientRef, ok
}

// ProviderRefHeader identifies the calling provider on provider-side
// routes. Like ClientRefHeader, the identity is established by the
// gateway; the middleware enforces presence and a numeric form, and
// handlers verify it against the resource's provider ID.
const ProviderRefHeader = "X-Provider-Ref"

const providerRefKey contextKey = "providerRef"

// ProviderAuth requires the provider reference header on provider-side
// routes.
func ProviderAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(ProviderRefHeader))
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing "+ProviderRefHeader+" header")
			return
		}

		providerRef, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || providerRef <= 0 {
			handlers.RespondUnauthorized(w, "invalid "+ProviderRefHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), providerRefKey, providerRef)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetProviderRef returns the provider reference stored by ProviderAuth.
func GetProviderRef(ctx context.Context) (int64, bool) {
	providerRef, ok := ctx.Value(providerRefKey).(int64)
	return providerRef, ok
}
