// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helper "artsadventure_backend/internals/helpers"
)

// Locals keys written by VerifyJWT.
const (
	LocUserEmail = "user_email"
	LocClaims    = "claims"
)

// VerifyJWT is the identity gate: it verifies the bearer credential and puts
// the embedded claims into Locals. It never looks at roles; the role gate
// (RequireRoles) must be chained after it.
func VerifyJWT(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.AuthError(c, fiber.StatusUnauthorized, "unauthorized access")
		}

		if secret == "" {
			log.Println("[ERROR] ACCESS_TOKEN_SECRET is empty")
			return helper.Error(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}); err != nil {
			log.Println("[ERROR] token parse failed:", err)
			return helper.AuthError(c, fiber.StatusUnauthorized, "unauthorized access")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] exp validation:", err)
			return helper.AuthError(c, fiber.StatusUnauthorized, "unauthorized access")
		}

		email, err := extractEmail(claims)
		if err != nil {
			log.Println("[ERROR] email claim:", err)
			return helper.AuthError(c, fiber.StatusUnauthorized, "unauthorized access")
		}

		helper.SetRawAccessToken(c, tokenString)
		c.Locals(LocUserEmail, email)
		c.Locals(LocClaims, claims)
		return c.Next()
	}
}

// TokenEmail returns the verified caller identity set by VerifyJWT.
func TokenEmail(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserEmail).(string); ok {
		return v
	}
	return ""
}
