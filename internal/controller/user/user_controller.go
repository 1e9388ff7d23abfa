package user

import (
	"net/http"

	"github.com/aquispel/burnout-api/internal/controller/respond"
	"github.com/aquispel/burnout-api/internal/dto"
	"github.com/aquispel/burnout-api/internal/middleware"
	"github.com/aquispel/burnout-api/internal/service"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetMyProfile godoc
// @Summary Get the authenticated user's profile
// @Description Returns the profile plus test statistics (total and completed).
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserDetailResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/me [get]
func (c *UserController) GetMyProfile(ctx *gin.Context) {
	profile, err := c.userService.GetProfile(middleware.CurrentUserID(ctx))
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UpdateMyProfile godoc
// @Summary Partially update the authenticated user's profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body dto.UserUpdateDTO true "Fields to change"
// @Success 200 {object} dto.UserResponseDTO
// @Failure 409 {object} dto.ErrorResponse "Username or email already in use"
// @Router /users/me [patch]
func (c *UserController) UpdateMyProfile(ctx *gin.Context) {
	var req dto.UserUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BindingError(ctx, err)
		return
	}

	user, err := c.userService.UpdateProfile(middleware.CurrentUserID(ctx), req)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// ChangeMyPassword godoc
// @Summary Change the authenticated user's password
// @Tags Users
// @Accept json
// @Security BearerAuth
// @Param passwords body dto.ChangePasswordDTO true "Current and new password"
// @Success 204
// @Failure 401 {object} dto.ErrorResponse "Current password incorrect"
// @Router /users/me/change-password [post]
func (c *UserController) ChangeMyPassword(ctx *gin.Context) {
	var req dto.ChangePasswordDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond.BindingError(ctx, err)
		return
	}

	if err := c.userService.ChangePassword(middleware.CurrentUserID(ctx), req); err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
