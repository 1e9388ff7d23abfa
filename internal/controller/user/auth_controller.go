package user

import (
	"net/http"

	"github.com/aquispel/burnout-api/internal/controller/respond"
	"github.com/aquispel/burnout-api/internal/dto"
	"github.com/aquispel/burnout-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register a new account
// @Description Creates a user account. The first answer-taking role is always "user".
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration body dto.RegisterRequestDTO true "Account data"
// @Success 201 {object} dto.UserResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 409 {object} dto.ErrorResponse "Username or email already in use"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BindingError(ctx, err)
		return
	}

	user, err := c.authService.Register(req)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Log in and obtain a JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequestDTO true "Username and password"
// @Success 200 {object} dto.TokenResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Bad credentials"
// @Failure 403 {object} dto.ErrorResponse "Inactive account"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BindingError(ctx, err)
		return
	}

	token, err := c.authService.Login(req)
	if err != nil {
		log.Warn().Str("username", req.Username).Msg("Login failed")
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, token)
}
