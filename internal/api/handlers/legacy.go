package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobsweep/internal/config"
	"jobsweep/internal/logging"
	"jobsweep/internal/providers"
	"jobsweep/pkg/models"
	"jobsweep/pkg/utils"
)

// ProxySearchHandler serves the legacy single-provider endpoints. Same
// query validation as the aggregated search, but one adapter only and no
// merging; kept for clients that predate aggregation.
//
// Unlike the aggregated endpoint, upstream failures surface as errors
// here: there is no partial result to fall back on.
func ProxySearchHandler(cfg *config.Config, provider providers.Provider) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID).WithField("provider", provider.ID())

		q, errMsg := parseSearchQuery(c, cfg)
		if errMsg != "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errMsg})
		}

		if !provider.Available() {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: provider.Name() + " credentials missing",
			})
		}

		logger.Info("Proxy search request", map[string]interface{}{
			"title": q.Title,
			"zip":   q.Zip,
		})

		result := provider.Fetch(c.Request().Context(), q, q.Page, q.PageSize)
		if result.Failed() {
			logger.Warn("Proxy search failed", map[string]interface{}{"error": result.Error})
			return c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "Upstream error",
				Details: utils.Truncate(result.Error, maxUpstreamDetail),
			})
		}

		return c.JSON(http.StatusOK, models.ProxySearchResponse{
			Total:    result.Total,
			Page:     q.Page,
			PageSize: q.PageSize,
			Jobs:     result.Jobs,
			Source:   provider.Name(),
		})
	}
}

// maxUpstreamDetail caps upstream failure detail in proxy responses.
const maxUpstreamDetail = 400
