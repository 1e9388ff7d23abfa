package admin

import (
	"net/http"

	"github.com/aquispel/burnout-api/internal/controller/respond"
	"github.com/aquispel/burnout-api/internal/service"
	"github.com/gin-gonic/gin"
)

type UserAdminController struct {
	userService service.UserService
}

func NewUserAdminController(userService service.UserService) *UserAdminController {
	return &UserAdminController{userService: userService}
}

// ListUsers godoc
// @Summary (Admin) List accounts
// @Tags Admin - Users
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows" default(100)
// @Success 200 {array} dto.UserResponseDTO
// @Router /admin/users [get]
func (c *UserAdminController) ListUsers(ctx *gin.Context) {
	skip, limit := parsePagination(ctx)
	users, err := c.userService.ListUsers(skip, limit)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// ActivateUser godoc
// @Summary (Admin) Reactivate an account
// @Tags Admin - Users
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.UserResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/users/{user_id}/activate [post]
func (c *UserAdminController) ActivateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "user_id")
	if !ok {
		return
	}
	user, err := c.userService.SetActive(id, true)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// DeactivateUser godoc
// @Summary (Admin) Deactivate an account
// @Tags Admin - Users
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.UserResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/users/{user_id}/deactivate [post]
func (c *UserAdminController) DeactivateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "user_id")
	if !ok {
		return
	}
	user, err := c.userService.SetActive(id, false)
	if err != nil {
		respond.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}
