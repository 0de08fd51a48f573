package controller

import (
	"utsav-api/core/controller"
	"utsav-api/core/errors"
	"utsav-api/modules/participation/dto"
	"utsav-api/modules/participation/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ParticipationController struct {
	service *service.ParticipationService
	controller.BaseController
}

func NewParticipationController(service *service.ParticipationService) *ParticipationController {
	return &ParticipationController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// Request submits a performer's participation request for an approved event
// @Summary Request participation
// @Tags Participation
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RequestParticipationRequest true "Event and performer"
// @Success 201 {object} map[string]interface{}
// @Success 200 {object} map[string]interface{} "Already requested"
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /participations/request [post]
func (c *ParticipationController) Request(ctx echo.Context) error {
	req := new(dto.RequestParticipationRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, alreadyRequested, appErr := c.service.Request(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	if alreadyRequested {
		return c.SuccessResponse(ctx, result, "Already requested")
	}
	return c.CreatedResponse(ctx, result, "Request sent")
}

// Accept moves a participation request to accepted
// @Summary Accept participation
// @Tags Participation
// @Security BearerAuth
// @Produce json
// @Param eventId path string true "Event ID"
// @Param performerId path string true "Performer ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.AppError
// @Router /participations/{eventId}/{performerId}/accept [patch]
func (c *ParticipationController) Accept(ctx echo.Context) error {
	eventID, performerID, err := c.pathIDs(ctx)
	if err != nil {
		return err
	}

	result, appErr := c.service.Accept(ctx.Request().Context(), eventID, performerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Accepted")
}

// Reject closes a participation request before payment has started
// @Summary Reject participation
// @Tags Participation
// @Security BearerAuth
// @Produce json
// @Param eventId path string true "Event ID"
// @Param performerId path string true "Performer ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /participations/{eventId}/{performerId}/reject [patch]
func (c *ParticipationController) Reject(ctx echo.Context) error {
	eventID, performerID, err := c.pathIDs(ctx)
	if err != nil {
		return err
	}

	result, appErr := c.service.Reject(ctx.Request().Context(), eventID, performerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Rejected")
}

// DefinePayment sets the expected amount and opens the payment window
// @Summary Define participation payment
// @Tags Participation
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param performerId path string true "Performer ID"
// @Param request body dto.DefinePaymentRequest true "Payment terms"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.AppError
// @Router /participations/{eventId}/{performerId}/pay [patch]
func (c *ParticipationController) DefinePayment(ctx echo.Context) error {
	eventID, performerID, err := c.pathIDs(ctx)
	if err != nil {
		return err
	}

	req := new(dto.DefinePaymentRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.DefinePayment(ctx.Request().Context(), eventID, performerID, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Payment set to pending")
}

// SubmitPaymentProof attaches the performer's payment reference
// @Summary Submit payment proof
// @Tags Participation
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param performerId path string true "Performer ID"
// @Param request body dto.SubmitPaymentProofRequest true "Payment reference"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.AppError
// @Router /participations/{eventId}/{performerId}/submit-payment [patch]
func (c *ParticipationController) SubmitPaymentProof(ctx echo.Context) error {
	eventID, performerID, err := c.pathIDs(ctx)
	if err != nil {
		return err
	}

	req := new(dto.SubmitPaymentProofRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.SubmitPaymentProof(ctx.Request().Context(), eventID, performerID, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Payment proof submitted")
}

// ConfirmPayment marks a pending payment as received
// @Summary Confirm participation payment
// @Tags Participation
// @Security BearerAuth
// @Produce json
// @Param eventId path string true "Event ID"
// @Param performerId path string true "Performer ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /participations/{eventId}/{performerId}/confirm-pay [patch]
func (c *ParticipationController) ConfirmPayment(ctx echo.Context) error {
	eventID, performerID, err := c.pathIDs(ctx)
	if err != nil {
		return err
	}

	result, appErr := c.service.ConfirmPayment(ctx.Request().Context(), eventID, performerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Payment confirmed")
}

// SetSchedule records the stage schedule for a confirmed-paid performer
// @Summary Schedule participation
// @Tags Participation
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param performerId path string true "Performer ID"
// @Param request body dto.SetScheduleRequest true "Schedule"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /participations/{eventId}/{performerId}/schedule [patch]
func (c *ParticipationController) SetSchedule(ctx echo.Context) error {
	eventID, performerID, err := c.pathIDs(ctx)
	if err != nil {
		return err
	}

	req := new(dto.SetScheduleRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.SetSchedule(ctx.Request().Context(), eventID, performerID, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Scheduled")
}

// ListForOrganizer flattens requests across the organizer's events
// @Summary List participation requests for organizer
// @Tags Participation
// @Security BearerAuth
// @Produce json
// @Param organizerId path string true "Organizer ID"
// @Success 200 {object} map[string]interface{}
// @Router /participations/requests/for-organizer/{organizerId} [get]
func (c *ParticipationController) ListForOrganizer(ctx echo.Context) error {
	organizerID, err := uuid.Parse(ctx.Param("organizerId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid organizer id", nil)
	}

	result, appErr := c.service.ListForOrganizer(ctx.Request().Context(), organizerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Requests retrieved")
}

// ListForPerformer returns the performer's own participations
// @Summary List participations for performer
// @Tags Participation
// @Security BearerAuth
// @Produce json
// @Param performerId path string true "Performer ID"
// @Success 200 {object} map[string]interface{}
// @Router /participations/for-performer/{performerId} [get]
func (c *ParticipationController) ListForPerformer(ctx echo.Context) error {
	performerID, err := uuid.Parse(ctx.Param("performerId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid performer id", nil)
	}

	result, appErr := c.service.ListForPerformer(ctx.Request().Context(), performerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Participations retrieved")
}

// ListPayments returns performer payments across the organizer's events
// @Summary List participation payments for organizer
// @Tags Participation
// @Security BearerAuth
// @Produce json
// @Param organizerId path string true "Organizer ID"
// @Success 200 {object} map[string]interface{}
// @Router /participations/payments/for-organizer/{organizerId} [get]
func (c *ParticipationController) ListPayments(ctx echo.Context) error {
	organizerID, err := uuid.Parse(ctx.Param("organizerId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid organizer id", nil)
	}

	result, appErr := c.service.ListPaymentsForOrganizer(ctx.Request().Context(), organizerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Payments retrieved")
}

func (c *ParticipationController) pathIDs(ctx echo.Context) (uuid.UUID, uuid.UUID, error) {
	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, c.BadRequest(errors.ErrInvalidInput, "invalid event id", nil)
	}
	performerID, err := uuid.Parse(ctx.Param("performerId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, c.BadRequest(errors.ErrInvalidInput, "invalid performer id", nil)
	}
	return eventID, performerID, nil
}
