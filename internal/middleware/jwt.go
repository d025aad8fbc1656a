package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/izakod/asn-api/internal/utils"
)

// JWTProtected returns a middleware that validates JWT bearer tokens and
// binds the session identity to the request locals.
func JWTProtected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization header missing")
		}

		const bearer = "Bearer "
		if !strings.HasPrefix(strings.ToLower(authorization), strings.ToLower(bearer)) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		tokenString := strings.TrimSpace(authorization[len(bearer):])
		if tokenString == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token claims")
		}

		pegawaiID := claimUint(claims, "sub")
		if pegawaiID == nil {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token subject")
		}

		c.Locals("pegawai_id", *pegawaiID)
		if nip, ok := claims["nip"].(string); ok {
			c.Locals("nip", nip)
		}
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", strings.ToLower(strings.TrimSpace(role)))
		}
		if unitID := claimUint(claims, "unit_id"); unitID != nil {
			c.Locals("unit_id", *unitID)
		}

		return c.Next()
	}
}

func claimUint(claims jwt.MapClaims, key string) *uint {
	value, ok := claims[key]
	if !ok {
		return nil
	}

	switch v := value.(type) {
	case float64:
		if v < 0 {
			return nil
		}
		id := uint(v)
		return &id
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil
		}
		id := uint(parsed)
		return &id
	case int:
		if v < 0 {
			return nil
		}
		id := uint(v)
		return &id
	default:
		return nil
	}
}
