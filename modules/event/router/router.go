package router

import (
	"utsav-api/core/middleware"
	"utsav-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	controller *controller.EventController
}

func NewEventRouter(controller *controller.EventController) *EventRouter {
	return &EventRouter{controller: controller}
}

func (r *EventRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	events := e.Group("/events")
	events.GET("/approved", r.controller.ListApproved)
	events.GET("/:id", r.controller.Get)

	auth := events.Group("", mw.AuthMiddleware())
	auth.GET("", r.controller.List)
	auth.POST("", r.controller.Create, mw.RequireRole("organizer", "admin"))
	auth.PATCH("/:id/status", r.controller.UpdateStatus, mw.RequireRole("admin"))
}
