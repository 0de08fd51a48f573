package router

import (
	"utsav-api/core/middleware"
	"utsav-api/modules/ticket/controller"

	"github.com/labstack/echo/v4"
)

type TicketRouter struct {
	controller *controller.TicketController
}

func NewTicketRouter(controller *controller.TicketController) *TicketRouter {
	return &TicketRouter{controller: controller}
}

func (r *TicketRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	tickets := e.Group("/tickets", mw.AuthMiddleware())
	tickets.POST("/book", r.controller.Book)
	tickets.GET("/user/:id", r.controller.ListByUser)
	tickets.GET("/organizer/:id", r.controller.ListSales, mw.RequireRole("organizer", "admin"))
	tickets.GET("/:id", r.controller.Get)

	transactions := e.Group("/transactions", mw.AuthMiddleware(), mw.RequireRole("admin"))
	transactions.GET("/admin-commissions", r.controller.ListAdminCommissions)
	transactions.PUT("/approve/:id", r.controller.ApproveTransaction)
}
