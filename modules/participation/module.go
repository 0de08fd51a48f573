package participation

import (
	"utsav-api/core/database"
	"utsav-api/core/middleware"
	"utsav-api/core/tasks"
	"utsav-api/modules/participation/controller"
	"utsav-api/modules/participation/repository"
	"utsav-api/modules/participation/router"
	"utsav-api/modules/participation/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, db database.Database, mw *middleware.Middleware, events service.EventStore, notifier tasks.Notifier) *service.ParticipationService {
	repo := repository.NewParticipationRepository(db)
	svc := service.NewParticipationService(repo, events, notifier)
	ctrl := controller.NewParticipationController(svc)

	router.NewParticipationRouter(ctrl).Register(e, mw)

	return svc
}
