// internals/middlewares/auth/role_middleware.go
package auth

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "artsadventure_backend/internals/helpers"
)

// RoleFinder resolves the stored role for a verified identity.
type RoleFinder interface {
	FindRoleByEmail(ctx context.Context, email string) (string, error)
}

// GormRoleFinder looks the role up in the users table.
type GormRoleFinder struct {
	DB *gorm.DB
}

func (f GormRoleFinder) FindRoleByEmail(ctx context.Context, email string) (string, error) {
	var role string
	err := f.DB.WithContext(ctx).
		Table("users").
		Select("role").
		Where("email = ?", email).
		Take(&role).Error
	return role, err
}

// RequireRoles is the role gate. It is meaningless without VerifyJWT in front:
// it reads the identity VerifyJWT stored and rejects the request when the
// stored role does not match any of allowedRoles.
func RequireRoles(finder RoleFinder, customForbiddenMessage string, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := TokenEmail(c)
		if email == "" {
			return helper.AuthError(c, fiber.StatusUnauthorized, "unauthorized access")
		}

		role, err := finder.FindRoleByEmail(c.UserContext(), email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.AuthError(c, fiber.StatusForbidden, "forbidden access")
			}
			log.Println("[ERROR] role lookup failed:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "forbidden access"
		}
		return helper.AuthError(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}
