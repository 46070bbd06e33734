package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

type contextKey string

// userClaimsKey is the context key for verified token claims.
const userClaimsKey = contextKey("userClaims")

// ClaimsFromContext retrieves the claims the middleware attached to the
// request context. ok is false on routes the middleware does not guard.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(userClaimsKey).(*Claims)
	return claims, ok
}

// Middleware returns a middleware that gates access behind a valid bearer
// token. A request with no Authorization header, or one whose value does
// not carry the "Bearer " scheme, is rejected with 401; a present but
// unverifiable token with 400. On success the claims are attached to the
// request context for downstream handlers.
func (tm *TokenManager) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || tokenStr == "" {
				respondError(w, http.StatusUnauthorized, "access denied")
				return
			}

			claims, err := tm.Verify(tokenStr)
			if err != nil {
				log.Warn().Err(err).Msg("Rejected request with invalid token")
				respondError(w, http.StatusBadRequest, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"msg": msg})
}
