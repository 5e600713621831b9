package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artsadventure_backend/internals/features/classes/dto"
	"artsadventure_backend/internals/features/classes/model"
	userModel "artsadventure_backend/internals/features/users/model"
	helper "artsadventure_backend/internals/helpers"
	authMw "artsadventure_backend/internals/middlewares/auth"
)

/* ================= Controller & Constructor ================= */

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

/* ================= Queries ================= */

func (ctl *ClassController) GetClasses(c *fiber.Ctx) error {
	var classes []model.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("class_created_at DESC").
		Find(&classes).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch classes")
	}
	return c.JSON(classes)
}

// GetPopularClasses returns the six approved classes with the highest
// enrollment.
func (ctl *ClassController) GetPopularClasses(c *fiber.Ctx) error {
	var classes []model.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_status = ?", model.ClassStatusApproved).
		Order("class_enrolled DESC").
		Limit(6).
		Find(&classes).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch popular classes")
	}
	return c.JSON(classes)
}

/* ================= Instructor submission ================= */

// CreateClass submits a new class owned by the calling instructor. It lands
// pending until admin review approves it.
func (ctl *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := authMw.TokenEmail(c)
	var instructor userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).Where("email = ?", email).First(&instructor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.AuthError(c, fiber.StatusForbidden, "forbidden access")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to look up instructor")
	}

	class := model.ClassModel{
		ClassName:           req.Name,
		ClassInstructorName: instructor.UserName,
		ClassEmail:          instructor.Email,
		ClassPrice:          req.Price,
		ClassAvailableSeats: req.AvailableSeats,
		ClassStatus:         model.ClassStatusPending,
	}
	if req.Image != "" {
		class.ClassImageURL = &req.Image
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&class).Error; err != nil {
		log.Println("[ERROR] create class:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create class")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Class submitted", class)
}
