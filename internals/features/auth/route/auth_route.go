package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "artsadventure_backend/internals/features/auth/controller"
)

func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	app.Post("/jwt", ctl.IssueJWT)
	app.Post("/auth/google", ctl.GoogleLogin)
}
