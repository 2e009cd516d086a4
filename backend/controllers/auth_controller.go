package controllers

import (
	"github.com/gofiber/fiber/v2"

	"courtside/backend/config"
	"courtside/backend/models"
	"courtside/backend/services"
	"courtside/backend/utils"
)

type AuthController struct {
	Auth services.AuthService
	Cfg  *config.Config
}

func NewAuthController(auth services.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{Auth: auth, Cfg: cfg}
}

// [+] Register godoc
// @Summary Register a new user
// @Description Creates a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param user body services.RegisterInput true "User registration data"
// @Success 200 {object} services.AuthResult
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	res, err := ac.Auth.Register(c.UserContext(), input)
	if err != nil {
		return respondError(c, err, "Could not create user")
	}
	return c.JSON(res)
}

// [+] Login godoc
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body services.LoginInput true "Login credentials"
// @Success 200 {object} services.AuthResult
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	res, err := ac.Auth.Login(c.UserContext(), input)
	if err != nil {
		return respondError(c, err, "Could not log in")
	}
	return c.JSON(res)
}

// CheckRole never fails: a missing or bad token just means "not a teacher".
func (ac *AuthController) CheckRole(c *fiber.Ctx) error {
	session, err := utils.ExtractSession(c, ac.Cfg)
	return c.JSON(fiber.Map{"isTeacher": err == nil && session.Role == models.RoleTeacher})
}
