package competition

import (
	"utsav-api/core/database"
	"utsav-api/core/middleware"
	"utsav-api/modules/competition/controller"
	"utsav-api/modules/competition/repository"
	"utsav-api/modules/competition/router"
	"utsav-api/modules/competition/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, db database.Database, mw *middleware.Middleware) *service.CompetitionService {
	repo := repository.NewCompetitionRepository(db)
	svc := service.NewCompetitionService(repo)
	ctrl := controller.NewCompetitionController(svc)

	router.NewCompetitionRouter(ctrl).Register(e, mw)

	return svc
}
