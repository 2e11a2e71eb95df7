package authz

import (
	"net/http"

	"fastshift/internal/entities"
	"fastshift/internal/pkg/middlewares/authn"
	"fastshift/pkg/logger"
)

// RequireRole пускает дальше только запросы с одной из перечисленных ролей.
// Роль разрешается по базе на каждый запрос, а не берется из токена:
// понижение роли действует немедленно, не дожидаясь истечения токена.
func RequireRole(log handlerLogger, resolver RoleResolver, roles ...entities.RoleType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := authn.IdentityFromContext(r.Context())
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized", "missing identity")
				return
			}

			role, err := resolver.ResolveRole(r.Context(), identity.Email)
			if err != nil {
				log.With(
					logger.NewField("email", identity.Email),
					logger.NewField("error", err),
				).Error("role resolution failed")

				writeJSONError(w, http.StatusBadGateway, "Bad Gateway", "role resolution failed")
				return
			}

			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.With(
				logger.NewField("email", identity.Email),
				logger.NewField("role", role.String()),
				logger.NewField("path", r.URL.Path),
			).Warn("access denied")

			writeJSONError(w, http.StatusForbidden, "Forbidden", "insufficient role")
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, title, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + title + `","message":"` + message + `"}`))
}
