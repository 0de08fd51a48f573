package router

import (
	"net/http"
	"testing"

	"utsav-api/core/middleware"
	"utsav-api/modules/booking/controller"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// The status update takes the booking id directly, with the new status in
// the request body.
func TestStatusUpdateRoutePath(t *testing.T) {
	e := echo.New()
	r := NewBookingRouter(controller.NewBookingController(nil))
	r.Register(e.Group("/api/v1"), middleware.NewMiddleware(nil))

	registered := map[string]bool{}
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	assert.True(t, registered[http.MethodPatch+" /api/v1/bookings/:id"])
	assert.False(t, registered[http.MethodPatch+" /api/v1/bookings/:id/status"])
}
