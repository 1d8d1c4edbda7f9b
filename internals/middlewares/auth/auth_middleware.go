// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"sekolahku_backend/internals/configs"
)

const (
	LocUserID = "user_id"
	LocRole   = "user_role"
)

func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("metode signing tidak valid")
			}
			return []byte(configs.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token tidak valid")
		}

		if sub, ok := claims["sub"].(string); ok {
			if id, err := uuid.Parse(sub); err == nil {
				c.Locals(LocUserID, id)
			}
		}
		if role, ok := claims["role"].(string); ok {
			c.Locals(LocRole, role)
		}
		return c.Next()
	}
}

// OnlyRoles membatasi akses ke role tertentu (admin, teacher, dst).
func OnlyRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocRole).(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "❌ Role Anda tidak diizinkan mengakses fitur ini")
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], nil
		}
		return "", errors.New("format Authorization header salah")
	}
	// fallback: cookie (web)
	if tok := c.Cookies("access_token"); tok != "" {
		return tok, nil
	}
	return "", errors.New("token tidak ditemukan")
}
