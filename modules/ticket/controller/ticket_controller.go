package controller

import (
	"utsav-api/core/controller"
	"utsav-api/core/errors"
	"utsav-api/modules/ticket/dto"
	"utsav-api/modules/ticket/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type TicketController struct {
	service *service.TicketService
	controller.BaseController
}

func NewTicketController(service *service.TicketService) *TicketController {
	return &TicketController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// Book purchases tickets for an event and records both settlement legs
// @Summary Book tickets
// @Tags Ticket
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BookTicketRequest true "Ticket order"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /tickets/book [post]
func (c *TicketController) Book(ctx echo.Context) error {
	req := new(dto.BookTicketRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.Book(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "Booking successful")
}

// Get returns one ticket
// @Summary Get ticket
// @Tags Ticket
// @Security BearerAuth
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.AppError
// @Router /tickets/{id} [get]
func (c *TicketController) Get(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid ticket id", nil)
	}

	result, appErr := c.service.Get(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Ticket retrieved")
}

// ListByUser returns a user's tickets
// @Summary List tickets by user
// @Tags Ticket
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /tickets/user/{id} [get]
func (c *TicketController) ListByUser(ctx echo.Context) error {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid user id", nil)
	}

	result, appErr := c.service.ListByUser(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Tickets retrieved")
}

// ListSales returns tickets sold across an organizer's events with their
// commission legs
// @Summary List organizer ticket sales
// @Tags Ticket
// @Security BearerAuth
// @Produce json
// @Param id path string true "Organizer ID"
// @Success 200 {object} map[string]interface{}
// @Router /tickets/organizer/{id} [get]
func (c *TicketController) ListSales(ctx echo.Context) error {
	organizerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid organizer id", nil)
	}

	result, appErr := c.service.ListSalesByOrganizer(ctx.Request().Context(), organizerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Sales retrieved")
}

// ListAdminCommissions returns all organizer-to-admin commission transactions
// @Summary List admin commissions
// @Tags Transaction
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /transactions/admin-commissions [get]
func (c *TicketController) ListAdminCommissions(ctx echo.Context) error {
	result, appErr := c.service.ListAdminCommissions(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Commissions retrieved")
}

// ApproveTransaction approves one settlement leg
// @Summary Approve transaction
// @Tags Transaction
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.AppError
// @Router /transactions/approve/{id} [put]
func (c *TicketController) ApproveTransaction(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid transaction id", nil)
	}

	result, appErr := c.service.ApproveTransaction(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Transaction approved")
}
