package router

import (
	"utsav-api/core/middleware"
	"utsav-api/modules/booking/controller"

	"github.com/labstack/echo/v4"
)

type BookingRouter struct {
	controller *controller.BookingController
}

func NewBookingRouter(controller *controller.BookingController) *BookingRouter {
	return &BookingRouter{controller: controller}
}

func (r *BookingRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	bookings := e.Group("/bookings", mw.AuthMiddleware())
	bookings.POST("", r.controller.Create)
	bookings.GET("", r.controller.List)
	bookings.PATCH("/:id", r.controller.UpdateStatus, mw.RequireRole("organizer", "admin"))
}
