// internal/auth/middleware.go
package auth

import (
    "context"
    "encoding/json"
    "net/http"
    "strings"

    appErrors "github.com/tunewave/campaigns-backend/internal/errors"
    "github.com/tunewave/campaigns-backend/internal/model"
)

type contextKey struct{}

var userKey contextKey

// Middleware resolves the caller's identity from the Authorization header
// and attaches it to the request context. If no identity resolves the
// request stops here with UNAUTHORIZED: nothing downstream runs.
func Middleware(verifier *TokenVerifier) func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            authHeader := r.Header.Get("Authorization")
            if authHeader == "" {
                unauthorized(w)
                return
            }

            parts := strings.SplitN(authHeader, " ", 2)
            if len(parts) != 2 || parts[0] != "Bearer" {
                unauthorized(w)
                return
            }

            user, err := verifier.Verify(parts[1])
            if err != nil {
                unauthorized(w)
                return
            }

            next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
        })
    }
}

// FromContext reads the identity the middleware attached. Downstream code
// reads it from here, never re-derives it from the request.
func FromContext(ctx context.Context) (model.User, bool) {
    user, ok := ctx.Value(userKey).(model.User)
    return user, ok
}

// WithUser attaches an identity to a context. Used by tests and by the
// middleware above.
func WithUser(ctx context.Context, user model.User) context.Context {
    return context.WithValue(ctx, userKey, user)
}

func unauthorized(w http.ResponseWriter) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusUnauthorized)
    json.NewEncoder(w).Encode(map[string]string{"error": appErrors.CodeUnauthorized})
}
