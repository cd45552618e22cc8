// Package middleware содержит HTTP-middleware сервиса
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/prepmate/MIP-BookingService/internal/api/handlers"
	"github.com/prepmate/MIP-BookingService/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

const (
	msgMissingAuth = "требуется аутентификация"
	msgInvalidAuth = "некорректные данные аутентификации"
)

// Identity аутентифицированный пользователь запроса
type Identity struct {
	UserID int64
	Role   domain.Role
}

// Auth проверяет аутентификацию запроса
// Основной путь - Bearer JWT (HS256) с клеймами user_id и role.
// Для внутренних вызовов поддерживается fallback на заголовки
// X-User-ID и X-User-Role
func Auth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := identityFromRequest(r, jwtSecret)
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidAuth)
				return
			}
			if identity == nil {
				handlers.RespondUnauthorized(w, msgMissingAuth)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, *identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext извлекает аутентифицированного пользователя из контекста
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

func identityFromRequest(r *http.Request, jwtSecret string) (*Identity, error) {
	if auth := r.Header.Get("Authorization"); auth != "" {
		return identityFromToken(auth, jwtSecret)
	}

	// Fallback для внутренних вызовов
	if userIDHeader := r.Header.Get("X-User-ID"); userIDHeader != "" {
		userID, err := strconv.ParseInt(userIDHeader, 10, 64)
		if err != nil || userID <= 0 {
			return nil, fmt.Errorf("invalid X-User-ID header")
		}

		role := domain.RoleUser
		if roleHeader := r.Header.Get("X-User-Role"); roleHeader != "" {
			parsed, err := parseRole(roleHeader)
			if err != nil {
				return nil, err
			}
			role = parsed
		}

		return &Identity{UserID: userID, Role: role}, nil
	}

	return nil, nil
}

func identityFromToken(authHeader, jwtSecret string) (*Identity, error) {
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, fmt.Errorf("invalid authorization format")
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	rawUserID, ok := claims["user_id"].(float64)
	if !ok || rawUserID <= 0 {
		return nil, fmt.Errorf("token is missing user_id claim")
	}

	role := domain.RoleUser
	if rawRole, ok := claims["role"].(string); ok {
		parsed, err := parseRole(rawRole)
		if err != nil {
			return nil, err
		}
		role = parsed
	}

	return &Identity{UserID: int64(rawUserID), Role: role}, nil
}

func parseRole(raw string) (domain.Role, error) {
	role := domain.Role(raw)
	switch role {
	case domain.RoleUser, domain.RoleInterviewer, domain.RoleAdmin:
		return role, nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}
