package controller

import (
	"errors"
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"artsadventure_backend/internals/configs"
	authService "artsadventure_backend/internals/features/auth/service"
	userModel "artsadventure_backend/internals/features/users/model"
	helper "artsadventure_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

type issueJWTRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty,max=100"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// IssueJWT signs a 1h access token for the posted identity. The client is
// expected to have authenticated out-of-band (Firebase/Google on the
// frontend) before calling this.
func (ctl *AuthController) IssueJWT(c *fiber.Ctx) error {
	var req issueJWTRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, err := authService.IssueAccessToken(req.Email, req.Name)
	if err != nil {
		log.Println("[ERROR] issue token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	return c.JSON(fiber.Map{"token": token})
}

// GoogleLogin verifies a Google ID token server-side, upserts the user record
// and issues our own access token.
func (ctl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req googleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.AuthError(c, fiber.StatusUnauthorized, "unauthorized access")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode ID token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	name, googleID := claimSet.Name, claimSet.Sub

	var user userModel.UserModel
	err = ctl.DB.WithContext(c.UserContext()).Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = userModel.UserModel{
			UserName: name,
			Email:    email,
			GoogleID: &googleID,
		}
		if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
			log.Println("[ERROR] google upsert:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
		}
	case err != nil:
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to look up user")
	default:
		if user.GoogleID == nil {
			_ = ctl.DB.WithContext(c.UserContext()).
				Model(&userModel.UserModel{}).
				Where("id = ?", user.ID).
				Update("google_id", googleID).Error
		}
	}

	token, err := authService.IssueAccessToken(email, name)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	return c.JSON(fiber.Map{"token": token})
}
