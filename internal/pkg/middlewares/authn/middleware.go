package authn

import (
	"context"
	"net/http"
	"strings"

	"fastshift/internal/entities"
	"fastshift/pkg/logger"
)

type contextKey struct{}

var identityKey contextKey

const bearerPrefix = "Bearer "

// Middleware проверяет bearer-токен и кладет личность в контекст запроса.
// Отсутствующий и невалидный токен различаются только телом ответа,
// статус в обоих случаях 401.
func Middleware(log handlerLogger, verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				writeUnauthorized(w, "missing bearer token")
				return
			}

			identity, err := verifier.Verify(strings.TrimPrefix(authHeader, bearerPrefix))
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("token verification failed")

				writeUnauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, *identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext возвращает личность, положенную Middleware.
func IdentityFromContext(ctx context.Context) (entities.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(entities.Identity)
	return identity, ok
}

// ContextWithIdentity используется в тестах хендлеров.
func ContextWithIdentity(ctx context.Context, identity entities.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized","message":"` + message + `"}`))
}
