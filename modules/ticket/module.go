package ticket

import (
	"utsav-api/core/database"
	"utsav-api/core/middleware"
	"utsav-api/modules/ticket/controller"
	"utsav-api/modules/ticket/repository"
	"utsav-api/modules/ticket/router"
	"utsav-api/modules/ticket/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, db database.Database, mw *middleware.Middleware, events service.EventStore, adminUserID uuid.UUID, commissionRate float64) *service.TicketService {
	repo := repository.NewTicketRepository(db)
	svc := service.NewTicketService(repo, events, adminUserID, commissionRate)
	ctrl := controller.NewTicketController(svc)

	router.NewTicketRouter(ctrl).Register(e, mw)

	return svc
}
