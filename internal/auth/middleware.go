package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"logistics-backoffice/internal/logx"
)

// TokenParser validates session tokens.
type TokenParser interface {
	Parse(raw string) (uuid.UUID, error)
}

// Middleware rejects requests without a valid session token with 401 and
// stores the account id in the request context otherwise. The token is read
// from the Authorization header, or from the access_token query parameter
// for EventSource clients that cannot set headers.
func Middleware(parser TokenParser, logger logx.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logx.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearer(r)
			if raw == "" {
				unauthorized(w)
				return
			}
			id, err := parser.Parse(raw)
			if err != nil {
				logger.Debug("session rejected", logx.Err(err), logx.String("path", r.URL.Path))
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), id)))
		})
	}
}

func bearer(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		const prefix = "Bearer "
		if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
			return strings.TrimSpace(h[len(prefix):])
		}
		return ""
	}
	return r.URL.Query().Get("access_token")
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
