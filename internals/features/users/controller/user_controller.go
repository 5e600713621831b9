package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"artsadventure_backend/internals/constants"
	"artsadventure_backend/internals/features/users/dto"
	"artsadventure_backend/internals/features/users/model"
	helper "artsadventure_backend/internals/helpers"
	authMw "artsadventure_backend/internals/middlewares/auth"
)

/* ================= Controller & Constructor ================= */

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

/* ================= Queries ================= */

// GetUsers lists every registered user (admin gate upstream).
func (ctl *UserController) GetUsers(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return c.JSON(users)
}

// GetInstructors lists users whose role is instructor (public).
func (ctl *UserController) GetInstructors(c *fiber.Ctx) error {
	var instructors []model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("role = ?", constants.RoleInstructor).
		Find(&instructors).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch instructors")
	}
	return c.JSON(instructors)
}

/* ================= Registration ================= */

// CreateUser is an idempotent upsert keyed by email: re-posting an existing
// email reports "User already exists" instead of failing, so the Google
// sign-in flow can fire it on every login.
func (ctl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing model.UserModel
	err := ctl.DB.WithContext(c.UserContext()).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return c.JSON(fiber.Map{"message": "User already exists"})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check existing user")
	}

	user := model.UserModel{
		UserName: req.Name,
		Email:    email,
	}
	if req.PhotoURL != "" {
		user.PhotoURL = &req.PhotoURL
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		user.Password = string(hashed)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			// raced with a concurrent registration for the same email
			return c.JSON(fiber.Map{"message": "User already exists"})
		}
		log.Println("[ERROR] create user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created", user)
}

/* ================= Role checks ================= */

// Per-role self checks. The token email must match the requested email;
// on mismatch the answer is simply false, never an error.

func (ctl *UserController) CheckAdmin(c *fiber.Ctx) error {
	return ctl.checkRole(c, "admin", constants.RoleAdmin)
}

func (ctl *UserController) CheckInstructor(c *fiber.Ctx) error {
	return ctl.checkRole(c, "instructor", constants.RoleInstructor)
}

func (ctl *UserController) CheckStudent(c *fiber.Ctx) error {
	return ctl.checkRole(c, "student", constants.RoleStudent)
}

func (ctl *UserController) checkRole(c *fiber.Ctx, field, role string) error {
	email := strings.ToLower(strings.TrimSpace(c.Params("email")))
	if authMw.TokenEmail(c) != email {
		return c.JSON(fiber.Map{field: false})
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{field: false})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to look up user")
	}
	return c.JSON(fiber.Map{field: user.Role == role})
}

/* ================= Role grants ================= */

func (ctl *UserController) MakeAdmin(c *fiber.Ctx) error {
	return ctl.grantRole(c, constants.RoleAdmin)
}

func (ctl *UserController) MakeInstructor(c *fiber.Ctx) error {
	return ctl.grantRole(c, constants.RoleInstructor)
}

// grantRole promotes a user. Grants are one-way: an admin is never demoted
// back to instructor by this path.
func (ctl *UserController) grantRole(c *fiber.Ctx, role string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to look up user")
	}

	if user.Role == constants.RoleAdmin && role != constants.RoleAdmin {
		return helper.Error(c, fiber.StatusConflict, "Role grants are one-way")
	}
	if user.Role == role {
		return helper.Success(c, "Role unchanged", user)
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("role", role).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update role")
	}
	user.Role = role
	return helper.Success(c, "Role updated", user)
}

/* ================= Admin delete ================= */

func (ctl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "User deleted", fiber.Map{"deleted_count": res.RowsAffected})
}
