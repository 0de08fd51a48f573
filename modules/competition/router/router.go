package router

import (
	"utsav-api/core/middleware"
	"utsav-api/modules/competition/controller"

	"github.com/labstack/echo/v4"
)

type CompetitionRouter struct {
	controller *controller.CompetitionController
}

func NewCompetitionRouter(controller *controller.CompetitionController) *CompetitionRouter {
	return &CompetitionRouter{controller: controller}
}

func (r *CompetitionRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	competitions := e.Group("/competitions", mw.AuthMiddleware())
	competitions.GET("", r.controller.List)
	competitions.PATCH("/:id/winner", r.controller.SetWinner, mw.RequireRole("organizer", "admin"))
}
