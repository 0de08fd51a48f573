package controller

import (
	"utsav-api/core/controller"
	"utsav-api/core/errors"
	"utsav-api/modules/booking/dto"
	"utsav-api/modules/booking/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type BookingController struct {
	service *service.BookingService
	controller.BaseController
}

func NewBookingController(service *service.BookingService) *BookingController {
	return &BookingController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// Create records a booking request between an organizer and a competitor
// @Summary Create booking
// @Tags Booking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /bookings [post]
func (c *BookingController) Create(ctx echo.Context) error {
	req := new(dto.CreateBookingRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.Create(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "Booking created")
}

// List returns bookings, optionally filtered by organizer or competitor
// @Summary List bookings
// @Tags Booking
// @Security BearerAuth
// @Produce json
// @Param organizerId query string false "Organizer filter"
// @Param competitorId query string false "Competitor filter"
// @Success 200 {object} map[string]interface{}
// @Router /bookings [get]
func (c *BookingController) List(ctx echo.Context) error {
	var organizerID, competitorID *uuid.UUID
	if raw := ctx.QueryParam("organizerId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "invalid organizerId", nil)
		}
		organizerID = &id
	}
	if raw := ctx.QueryParam("competitorId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "invalid competitorId", nil)
		}
		competitorID = &id
	}

	result, appErr := c.service.List(ctx.Request().Context(), organizerID, competitorID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Bookings retrieved")
}

// UpdateStatus sets a booking status; accepting may pair bookings into a competition
// @Summary Update booking status
// @Tags Booking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /bookings/{id} [patch]
func (c *BookingController) UpdateStatus(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid booking id", nil)
	}

	req := new(dto.UpdateBookingStatusRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.SetStatus(ctx.Request().Context(), id, req.Status)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Booking status updated")
}
