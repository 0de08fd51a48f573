package controller

import (
	"strings"

	"utsav-api/core/constants"
	"utsav-api/core/controller"
	"utsav-api/core/errors"
	"utsav-api/core/utils"
	"utsav-api/modules/user/dto"
	"utsav-api/modules/user/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type UserController struct {
	service *service.UserService
	controller.BaseController
}

func NewUserController(service *service.UserService) *UserController {
	return &UserController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// Register creates a new account
// @Summary Register a new user
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /users/register [post]
func (c *UserController) Register(ctx echo.Context) error {
	req := new(dto.RegisterRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.Register(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "Registered successfully")
}

// Login authenticates a user and returns a JWT
// @Summary Login
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.AppError
// @Router /users/login [post]
func (c *UserController) Login(ctx echo.Context) error {
	req := new(dto.LoginRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.Login(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Logged in successfully")
}

// Logout revokes the current token
// @Summary Logout
// @Tags User
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /users/logout [post]
func (c *UserController) Logout(ctx echo.Context) error {
	header := ctx.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if appErr := c.service.Logout(ctx.Request().Context(), token); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Logged out successfully")
}

// Me returns the authenticated user's profile
// @Summary Current user profile
// @Tags User
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.AppError
// @Router /users/me [get]
func (c *UserController) Me(ctx echo.Context) error {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	result, appErr := c.service.GetProfile(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Profile retrieved")
}

// List returns users filtered by role/status (admin)
// @Summary List users
// @Tags User
// @Security BearerAuth
// @Produce json
// @Param role query string false "Role filter"
// @Param status query string false "Status filter"
// @Success 200 {object} map[string]interface{}
// @Router /users [get]
func (c *UserController) List(ctx echo.Context) error {
	result, appErr := c.service.List(ctx.Request().Context(), ctx.QueryParam("role"), ctx.QueryParam("status"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Users retrieved")
}

// UpdateStatus approves or rejects an account (admin)
// @Summary Update account status
// @Tags User
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.AppError
// @Router /users/{id}/status [patch]
func (c *UserController) UpdateStatus(ctx echo.Context) error {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid user id", nil)
	}

	req := new(dto.UpdateStatusRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.UpdateStatus(ctx.Request().Context(), userID, req.Status)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Status updated")
}

// GetUserIDFromContext extracts the authenticated user id set by the auth middleware.
func GetUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "user not authenticated", nil)
	}
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "invalid token data", nil)
	}
	return claims.UserID, nil
}
