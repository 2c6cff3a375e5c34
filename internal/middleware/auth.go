package middleware

import (
	"context"
	"net/http"

	"sessions-service/internal/auth"
)

// unexported, collision-proof context key
type identityContextKeyType struct{}

var identityKey = identityContextKeyType{}

// IdentityFromContext extracts the authenticated verdict placed by
// RequireAuth.
func IdentityFromContext(ctx context.Context) (auth.Verdict, bool) {
	v, ok := ctx.Value(identityKey).(auth.Verdict)
	return v, ok
}

type AuthMiddleware struct {
	Controller *auth.Controller
}

func NewAuthMiddleware(controller *auth.Controller) *AuthMiddleware {
	return &AuthMiddleware{Controller: controller}
}

// RequireAuth recognizes the raw Cookie header on every request and
// rejects anything that does not resolve to a live session. The store
// is consulted fresh each time; store failures deny access.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		verdict := a.Controller.Recognize(r.Context(), r.Header.Get("Cookie"))
		if !verdict.Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, verdict)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
