package serverutils

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// UserResolver reports whether the user id carried by a token still
// exists (and is therefore allowed through the gate).
type UserResolver func(ctx context.Context, userId uint) (bool, error)

// NewJwtMiddleware builds the authorization gate: it verifies the
// bearer token signature and expiry, then resolves the user id against
// the database. Each protected handler can rely on Locals("user_id")
// holding a valid uint.
func NewJwtMiddleware(secret string, resolve UserResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return Unauthorized("Missing token")
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return Unauthorized("Invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return Unauthorized("Invalid claims")
		}

		rawId, ok := claims["user_id"].(float64)
		if !ok || rawId <= 0 {
			return Unauthorized("Invalid claims")
		}
		userId := uint(rawId)

		exists, err := resolve(ctx.Context(), userId)
		if err != nil {
			return Internal("Failed to resolve user", err)
		}
		if !exists {
			return Unauthorized("Invalid token")
		}

		ctx.Locals("user_id", userId)
		return ctx.Next()
	}
}

// UserIdFromCtx extracts the user id stored by the JWT middleware.
func UserIdFromCtx(ctx *fiber.Ctx) uint {
	if id, ok := ctx.Locals("user_id").(uint); ok {
		return id
	}
	return 0
}
