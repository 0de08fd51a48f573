package event

import (
	"utsav-api/core/database"
	"utsav-api/core/middleware"
	"utsav-api/modules/event/controller"
	"utsav-api/modules/event/repository"
	"utsav-api/modules/event/router"
	"utsav-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, db database.Database, mw *middleware.Middleware) (*service.EventService, *repository.EventRepository) {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc)

	router.NewEventRouter(ctrl).Register(e, mw)

	return svc, repo
}
