package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/trackkeeper/internal/server/handlers"
)

// AuthMiddleware создает middleware для проверки JWT токена.
// user_id и username из токена кладутся в контекст запроса.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WarnContext(r.Context(), "Missing Authorization header", "path", r.URL.Path)
				http.Error(w, "Unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			scheme, tokenString, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
				// Сам заголовок не логируем: в нем может быть токен
				logger.WarnContext(r.Context(), "Invalid Authorization header format", "path", r.URL.Path)
				http.Error(w, "Unauthorized: invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, strings.TrimSpace(tokenString))
			if err != nil {
				logger.WarnContext(r.Context(), "Invalid access token", "error", err)
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			logger.DebugContext(r.Context(), "User authenticated", "user_id", claims.UserID, "username", claims.Username)

			ctx := handlers.WithUser(r.Context(), claims.UserID, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
