package controller

import (
	"log"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"artsadventure_backend/internals/features/payments/dto"
	"artsadventure_backend/internals/features/payments/model"
	"artsadventure_backend/internals/features/payments/repository"
	"artsadventure_backend/internals/features/payments/service"
	helper "artsadventure_backend/internals/helpers"
	authMw "artsadventure_backend/internals/middlewares/auth"
)

/* ================= Controller & Constructor ================= */

type PaymentController struct {
	DB         *gorm.DB
	Settlement *service.SettlementService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:         db,
		Settlement: service.NewSettlementService(repository.NewSettlementRepository(db)),
	}
}

var validate = validator.New()

/* ================= Checkout ================= */

// CreatePaymentIntent converts a decimal price into minor units and asks
// Stripe for a card intent.
func (ctl *PaymentController) CreatePaymentIntent(c *fiber.Ctx) error {
	var req dto.CreatePaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	amount := int64(math.Round(req.Price * 100))
	clientSecret, err := service.CreatePaymentIntent(amount, "usd")
	if err != nil {
		log.Println("[ERROR] create payment intent:", err)
		return helper.Error(c, fiber.StatusBadGateway, "Failed to create payment intent")
	}

	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}

// CreateSnapToken is the alternate checkout path through Midtrans Snap.
func (ctl *PaymentController) CreateSnapToken(c *fiber.Ctx) error {
	var req dto.CreateSnapTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	orderID := uuid.NewString()
	grossAmount := int64(math.Round(req.Price * 100))
	token, redirectURL, err := service.GenerateSnapToken(orderID, grossAmount, req.Name, req.Email)
	if err != nil {
		log.Println("[ERROR] create snap token:", err)
		return helper.Error(c, fiber.StatusBadGateway, "Failed to create snap transaction")
	}

	return c.JSON(fiber.Map{
		"order_id":     orderID,
		"token":        token,
		"redirect_url": redirectURL,
	})
}

/* ================= Settlement ================= */

// SettlePayment runs the settlement workflow for a completed charge. Any
// completion — even a partial one — answers 200 with the composite per-step
// result; only a failed commit-point insert is a 500.
func (ctl *PaymentController) SettlePayment(c *fiber.Ctx) error {
	var req dto.SettlePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// the verified identity must own the payment
	if authMw.TokenEmail(c) != strings.ToLower(strings.TrimSpace(req.Email)) {
		return helper.AuthError(c, fiber.StatusForbidden, "forbidden access")
	}

	// malformed references fail before any mutation
	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid classId reference")
	}
	selectionID, err := uuid.Parse(req.SelectedClassID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid selectedClassId reference")
	}

	result, err := ctl.Settlement.Settle(c.UserContext(), service.SettleInput{
		Email:           req.Email,
		Amount:          req.Amount,
		ClassID:         classID,
		SelectionID:     selectionID,
		GatewayProvider: model.PaymentProviderStripe,
		TransactionID:   req.TransactionID,
	})
	if err != nil {
		// commit point never landed: the purchase is not recorded
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record payment")
	}

	return c.JSON(result)
}

/* ================= History ================= */

// GetMyPayments lists the caller's settled payments, newest first.
func (ctl *PaymentController) GetMyPayments(c *fiber.Ctx) error {
	var payments []model.PaymentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("payment_email = ?", authMw.TokenEmail(c)).
		Order("payment_created_at DESC").
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}
	return c.JSON(payments)
}
