package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"artsadventure_backend/internals/features/selections/dto"
	"artsadventure_backend/internals/features/selections/model"
	helper "artsadventure_backend/internals/helpers"
	authMw "artsadventure_backend/internals/middlewares/auth"
)

/* ================= Controller & Constructor ================= */

type SelectionController struct {
	DB *gorm.DB
}

func NewSelectionController(db *gorm.DB) *SelectionController {
	return &SelectionController{DB: db}
}

var validate = validator.New()

// GetSelections lists the caller's cart. The email query parameter must match
// the verified token identity.
func (ctl *SelectionController) GetSelections(c *fiber.Ctx) error {
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	if email == "" {
		return helper.AuthError(c, fiber.StatusUnauthorized, "unauthorized access")
	}
	if authMw.TokenEmail(c) != email {
		return helper.AuthError(c, fiber.StatusForbidden, "forbidden access")
	}

	var selections []model.SelectionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("selection_email = ?", email).
		Order("selection_created_at DESC").
		Find(&selections).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch selections")
	}
	return c.JSON(selections)
}

func (ctl *SelectionController) CreateSelection(c *fiber.Ctx) error {
	var req dto.CreateSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if authMw.TokenEmail(c) != email {
		return helper.AuthError(c, fiber.StatusForbidden, "forbidden access")
	}

	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid classId reference")
	}

	selection := model.SelectionModel{
		SelectionEmail:   email,
		SelectionClassID: classID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&selection).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create selection")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Class selected", selection)
}

// DeleteSelection removes a cart entry directly (the user changed their mind
// before paying). Settlement deletes entries through its own path.
func (ctl *SelectionController) DeleteSelection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid selection id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("selection_id = ? AND selection_email = ?", id, authMw.TokenEmail(c)).
		Delete(&model.SelectionModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete selection")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Selection not found")
	}
	return helper.Success(c, "Selection removed", fiber.Map{"deleted_count": res.RowsAffected})
}
