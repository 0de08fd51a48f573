package router

import (
	"utsav-api/core/middleware"
	"utsav-api/modules/user/controller"

	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	controller *controller.UserController
}

func NewUserRouter(controller *controller.UserController) *UserRouter {
	return &UserRouter{controller: controller}
}

func (r *UserRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	users := e.Group("/users")
	users.POST("/register", r.controller.Register)
	users.POST("/login", r.controller.Login)

	auth := users.Group("", mw.AuthMiddleware())
	auth.POST("/logout", r.controller.Logout)
	auth.GET("/me", r.controller.Me)

	admin := users.Group("", mw.AuthMiddleware(), mw.RequireRole("admin"))
	admin.GET("", r.controller.List)
	admin.PATCH("/:id/status", r.controller.UpdateStatus)
}
