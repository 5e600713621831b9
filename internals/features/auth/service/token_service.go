package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"artsadventure_backend/internals/configs"
)

const accessTTL = time.Hour

// IssueAccessToken signs a short-lived access token for the given identity.
func IssueAccessToken(email string, name string) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "ACCESS_TOKEN_SECRET is not set")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"email": strings.ToLower(strings.TrimSpace(email)),
		"iat":   now.Unix(),
		"exp":   now.Add(accessTTL).Unix(),
	}
	if name != "" {
		claims["name"] = name
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
