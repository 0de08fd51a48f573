package controller

import (
	"utsav-api/core/controller"
	"utsav-api/core/errors"
	"utsav-api/modules/event/dto"
	"utsav-api/modules/event/service"
	userController "utsav-api/modules/user/controller"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	service *service.EventService
	controller.BaseController
}

func NewEventController(service *service.EventService) *EventController {
	return &EventController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// Create registers a new event, pending admin approval
// @Summary Create event
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.AppError
// @Router /events [post]
func (c *EventController) Create(ctx echo.Context) error {
	organizerID, err := userController.GetUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	req := new(dto.CreateEventRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.Create(ctx.Request().Context(), organizerID, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "Event created")
}

// ListApproved returns approved events for public browse
// @Summary List approved events
// @Tags Event
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /events/approved [get]
func (c *EventController) ListApproved(ctx echo.Context) error {
	result, appErr := c.service.ListApproved(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Events retrieved")
}

// List returns events, optionally filtered by organizer or status
// @Summary List events
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param organizerId query string false "Organizer filter"
// @Param status query string false "Status filter"
// @Success 200 {object} map[string]interface{}
// @Router /events [get]
func (c *EventController) List(ctx echo.Context) error {
	if raw := ctx.QueryParam("organizerId"); raw != "" {
		organizerID, err := uuid.Parse(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "invalid organizerId", nil)
		}
		result, appErr := c.service.ListByOrganizer(ctx.Request().Context(), organizerID)
		if appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
		return c.SuccessResponse(ctx, result, "Events retrieved")
	}

	result, appErr := c.service.ListAll(ctx.Request().Context(), ctx.QueryParam("status"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Events retrieved")
}

// Get returns one event
// @Summary Get event
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.AppError
// @Router /events/{id} [get]
func (c *EventController) Get(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid event id", nil)
	}

	result, appErr := c.service.GetByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Event retrieved")
}

// UpdateStatus approves or rejects an event (admin)
// @Summary Update event status
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.AppError
// @Router /events/{id}/status [patch]
func (c *EventController) UpdateStatus(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid event id", nil)
	}

	req := new(dto.UpdateEventStatusRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.UpdateStatus(ctx.Request().Context(), id, req.Status)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Event status updated")
}
