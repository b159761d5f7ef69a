package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/courseboard/internal/controller"
	"github.com/lshigami/courseboard/internal/dto"
	"github.com/lshigami/courseboard/internal/service"
)

type AdminUserController struct {
	userService service.AdminUserService
}

func NewAdminUserController(us service.AdminUserService) *AdminUserController {
	return &AdminUserController{userService: us}
}

// ListUsers godoc
// @Summary (Admin) List users
// @Tags Admin - Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users [get]
func (c *AdminUserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve users")
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// CreateUser godoc
// @Summary (Admin) Create a user
// @Description All five fields are required; role is student or admin.
// @Tags Admin - Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body dto.UserUpsertRequest true "User"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Username already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users [post]
func (c *AdminUserController) CreateUser(ctx *gin.Context) {
	var req dto.UserUpsertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	user, err := c.userService.CreateUser(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create user")
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// ReplaceUser godoc
// @Summary (Admin) Replace a user
// @Tags Admin - Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param user body dto.UserUpsertRequest true "User"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users/{username} [put]
func (c *AdminUserController) ReplaceUser(ctx *gin.Context) {
	var req dto.UserUpsertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	user, err := c.userService.ReplaceUser(ctx.Request.Context(), ctx.Param("username"), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update user")
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary (Admin) Delete a user
// @Tags Admin - Users
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users/{username} [delete]
func (c *AdminUserController) DeleteUser(ctx *gin.Context) {
	if err := c.userService.DeleteUser(ctx.Request.Context(), ctx.Param("username")); err != nil {
		controller.RespondError(ctx, err, "Failed to delete user")
		return
	}
	ctx.Status(http.StatusNoContent)
}
