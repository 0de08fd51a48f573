package main

import (
	"utsav-api/core/logger"
	"utsav-api/core/server"
)

// @title Utsav API
// @version 1.0
// @description Festival and event marketplace backend: events, performer participation, competitor bookings, competitions and ticket sales.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
