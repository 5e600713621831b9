package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "artsadventure_backend/internals/features/auth/route"
	classRoute "artsadventure_backend/internals/features/classes/route"
	paymentRoute "artsadventure_backend/internals/features/payments/route"
	selectionRoute "artsadventure_backend/internals/features/selections/route"
	userRoute "artsadventure_backend/internals/features/users/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, db)

	log.Println("[INFO] Setting up ClassRoutes...")
	classRoute.ClassRoutes(app, db)

	log.Println("[INFO] Setting up SelectionRoutes...")
	selectionRoute.SelectionRoutes(app, db)

	log.Println("[INFO] Setting up PaymentRoutes...")
	paymentRoute.PaymentRoutes(app, db)
}
