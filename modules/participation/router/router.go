package router

import (
	"utsav-api/core/middleware"
	"utsav-api/modules/participation/controller"

	"github.com/labstack/echo/v4"
)

type ParticipationRouter struct {
	controller *controller.ParticipationController
}

func NewParticipationRouter(controller *controller.ParticipationController) *ParticipationRouter {
	return &ParticipationRouter{controller: controller}
}

func (r *ParticipationRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	participations := e.Group("/participations", mw.AuthMiddleware())

	participations.POST("/request", r.controller.Request)
	participations.GET("/for-performer/:performerId", r.controller.ListForPerformer)

	organizer := mw.RequireRole("organizer", "admin")
	participations.GET("/requests/for-organizer/:organizerId", r.controller.ListForOrganizer, organizer)
	participations.GET("/payments/for-organizer/:organizerId", r.controller.ListPayments, organizer)
	participations.PATCH("/:eventId/:performerId/accept", r.controller.Accept, organizer)
	participations.PATCH("/:eventId/:performerId/reject", r.controller.Reject, organizer)
	participations.PATCH("/:eventId/:performerId/pay", r.controller.DefinePayment, organizer)
	participations.PATCH("/:eventId/:performerId/submit-payment", r.controller.SubmitPaymentProof)
	participations.PATCH("/:eventId/:performerId/confirm-pay", r.controller.ConfirmPayment, organizer)
	participations.PATCH("/:eventId/:performerId/schedule", r.controller.SetSchedule, organizer)
}
