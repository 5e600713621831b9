package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artsadventure_backend/internals/configs"
	selectionController "artsadventure_backend/internals/features/selections/controller"
	authMw "artsadventure_backend/internals/middlewares/auth"
)

func SelectionRoutes(app fiber.Router, db *gorm.DB) {
	ctl := selectionController.NewSelectionController(db)

	verify := authMw.VerifyJWT(configs.JWTSecret)

	app.Get("/selectCourse", verify, ctl.GetSelections)
	app.Post("/selectCourse", verify, ctl.CreateSelection)
	app.Delete("/selectCourse/:id", verify, ctl.DeleteSelection)
}
