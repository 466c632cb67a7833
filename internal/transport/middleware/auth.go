package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
	"github.com/heartmarshall/clearcare-backend/pkg/ctxutil"
)

// Auth error messages returned to clients.
const (
	MsgMissingAuthorization = "Missing Authorization header"
	MsgInvalidToken         = "Invalid or expired token"
)

type tokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (domain.Identity, error)
}

// Auth requires a valid bearer token and stores the verified identity in the
// request context. Requests without one are rejected with 401.
func Auth(verifier tokenVerifier, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, MsgMissingAuthorization)
				return
			}
			id, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", slog.String("error", err.Error()))
				writeJSONError(w, http.StatusUnauthorized, MsgInvalidToken)
				return
			}
			recordUser(r.Context(), id.UID)
			ctx := ctxutil.WithUserID(r.Context(), id.UID)
			if id.Email != "" {
				ctx = ctxutil.WithUserEmail(ctx, id.Email)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}
