package notification

import (
	"utsav-api/core/database"
	"utsav-api/core/middleware"
	"utsav-api/modules/notification/controller"
	"utsav-api/modules/notification/repository"
	"utsav-api/modules/notification/router"
	"utsav-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, db database.Database, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(e, mw)

	return svc
}
