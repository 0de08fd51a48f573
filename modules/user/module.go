package user

import (
	"utsav-api/core/cache"
	"utsav-api/core/database"
	"utsav-api/core/middleware"
	"utsav-api/modules/user/controller"
	"utsav-api/modules/user/repository"
	"utsav-api/modules/user/router"
	"utsav-api/modules/user/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, db database.Database, cache cache.Cache, mw *middleware.Middleware) (*service.UserService, *repository.UserRepository) {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo, cache)
	ctrl := controller.NewUserController(svc)

	router.NewUserRouter(ctrl).Register(e, mw)

	return svc, repo
}
