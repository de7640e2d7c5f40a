package middleware

import (
	"github.com/labstack/echo/v4"

	"jobsweep/pkg/utils"
)

// RequestID tags every request with a unique id, exposed both to
// handlers via the context and to clients via the X-Request-ID header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			return next(c)
		}
	}
}
