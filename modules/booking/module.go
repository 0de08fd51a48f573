package booking

import (
	"utsav-api/core/database"
	"utsav-api/core/middleware"
	"utsav-api/core/tasks"
	"utsav-api/modules/booking/controller"
	"utsav-api/modules/booking/repository"
	"utsav-api/modules/booking/router"
	"utsav-api/modules/booking/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, db database.Database, mw *middleware.Middleware, users service.UserDirectory, notifier tasks.Notifier) *service.BookingService {
	repo := repository.NewBookingRepository(db)
	svc := service.NewBookingService(repo, users, notifier)
	ctrl := controller.NewBookingController(svc)

	router.NewBookingRouter(ctrl).Register(e, mw)

	return svc
}
