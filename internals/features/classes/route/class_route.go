package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artsadventure_backend/internals/configs"
	"artsadventure_backend/internals/constants"
	classController "artsadventure_backend/internals/features/classes/controller"
	authMw "artsadventure_backend/internals/middlewares/auth"
)

func ClassRoutes(app fiber.Router, db *gorm.DB) {
	ctl := classController.NewClassController(db)

	verify := authMw.VerifyJWT(configs.JWTSecret)
	instructorOnly := authMw.RequireRoles(
		authMw.GormRoleFinder{DB: db},
		constants.RoleErrorInstructor("class submission"),
		constants.InstructorAndAbove...,
	)

	app.Get("/classes", ctl.GetClasses)
	app.Get("/popularClasses", ctl.GetPopularClasses)
	app.Post("/classes", verify, instructorOnly, ctl.CreateClass)
}
