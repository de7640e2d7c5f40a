package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"jobsweep/internal/logging"
	"jobsweep/pkg/models"
	"jobsweep/pkg/utils"
)

// maxErrorDetail caps how much of a panic value may leak to a client.
const maxErrorDetail = 400

// Recover converts panics into the JSON 500 shape the API promises,
// with the detail truncated so upstream bodies and stack content never
// reach the client in full.
func Recover() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					if r == http.ErrAbortHandler {
						panic(r)
					}

					logging.GetGlobalLogger().Error("Panic recovered", map[string]interface{}{
						"panic": fmt.Sprint(r),
						"path":  c.Request().URL.Path,
					})

					_ = c.JSON(http.StatusInternalServerError, models.ErrorResponse{
						Error:   "Server error",
						Details: utils.Truncate(fmt.Sprint(r), maxErrorDetail),
					})
				}
			}()

			return next(c)
		}
	}
}
