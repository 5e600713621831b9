package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artsadventure_backend/internals/configs"
	paymentController "artsadventure_backend/internals/features/payments/controller"
	authMw "artsadventure_backend/internals/middlewares/auth"
)

func PaymentRoutes(app fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)

	verify := authMw.VerifyJWT(configs.JWTSecret)

	app.Post("/create-payment-intent", verify, ctl.CreatePaymentIntent)
	app.Post("/create-snap-token", verify, ctl.CreateSnapToken)
	app.Post("/payments", verify, ctl.SettlePayment)
	app.Get("/payments", verify, ctl.GetMyPayments)
}
