package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artsadventure_backend/internals/configs"
	"artsadventure_backend/internals/constants"
	userController "artsadventure_backend/internals/features/users/controller"
	authMw "artsadventure_backend/internals/middlewares/auth"
)

func UserRoutes(app fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	verify := authMw.VerifyJWT(configs.JWTSecret)
	adminOnly := authMw.RequireRoles(
		authMw.GormRoleFinder{DB: db},
		constants.RoleErrorAdmin("user management"),
		constants.AdminOnly...,
	)

	// registration upsert stays public: it is fired on every Google login
	app.Post("/users", ctl.CreateUser)

	app.Get("/users", verify, adminOnly, ctl.GetUsers)
	app.Delete("/users/:id", verify, adminOnly, ctl.DeleteUser)

	app.Get("/users/admin/:email", verify, ctl.CheckAdmin)
	app.Get("/users/instructor/:email", verify, ctl.CheckInstructor)
	app.Get("/users/student/:email", verify, ctl.CheckStudent)

	app.Patch("/users/admin/:id", verify, adminOnly, ctl.MakeAdmin)
	app.Patch("/users/instructor/:id", verify, adminOnly, ctl.MakeInstructor)

	app.Get("/instructors", ctl.GetInstructors)
}
