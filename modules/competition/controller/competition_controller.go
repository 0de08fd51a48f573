package controller

import (
	"utsav-api/core/controller"
	"utsav-api/core/errors"
	"utsav-api/modules/competition/dto"
	"utsav-api/modules/competition/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CompetitionController struct {
	service *service.CompetitionService
	controller.BaseController
}

func NewCompetitionController(service *service.CompetitionService) *CompetitionController {
	return &CompetitionController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// List returns competitions with populated competitor details, newest first
// @Summary List competitions
// @Tags Competition
// @Security BearerAuth
// @Produce json
// @Param organizerId query string false "Organizer filter"
// @Success 200 {object} map[string]interface{}
// @Router /competitions [get]
func (c *CompetitionController) List(ctx echo.Context) error {
	var organizerID *uuid.UUID
	if raw := ctx.QueryParam("organizerId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "invalid organizerId", nil)
		}
		organizerID = &id
	}

	result, appErr := c.service.List(ctx.Request().Context(), organizerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Competitions retrieved")
}

// SetWinner records the winner and prize of a competition
// @Summary Set competition winner
// @Tags Competition
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Param request body dto.SetWinnerRequest true "Winner and prize"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /competitions/{id}/winner [patch]
func (c *CompetitionController) SetWinner(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid competition id", nil)
	}

	req := new(dto.SetWinnerRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.SetWinner(ctx.Request().Context(), id, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Winner recorded")
}
