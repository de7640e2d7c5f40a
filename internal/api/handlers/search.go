package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"jobsweep/internal/api/validation"
	"jobsweep/internal/config"
	"jobsweep/internal/logging"
	"jobsweep/pkg/models"
	"jobsweep/pkg/utils"
)

// defaultSources enables every provider when the client sends none.
const defaultSources = "adzuna,cos,usajobs"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterSearchValidators(v)
	return v
}

// Searcher runs an aggregated search for an already-validated query.
// Implemented by aggregator.Aggregator.
type Searcher interface {
	Search(ctx context.Context, q *models.SearchQuery) *models.SearchResponse
}

// AggregateSearchHandler handles the merged multi-provider search.
// Validation failures are rejected here with a 400 before any upstream
// call; everything past this point always answers 200 with whatever
// partial data the providers produced.
func AggregateSearchHandler(cfg *config.Config, searcher Searcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		q, errMsg := parseSearchQuery(c, cfg)
		if errMsg != "" {
			logger.Info("Search request rejected", map[string]interface{}{"reason": errMsg})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errMsg})
		}

		logger.Info("Aggregated search request", map[string]interface{}{
			"title":   q.Title,
			"zip":     q.Zip,
			"sources": strings.Join(q.Sources, ","),
		})

		response := searcher.Search(c.Request().Context(), q)

		logger.Info("Aggregated search completed", map[string]interface{}{
			"jobs":            len(response.Jobs),
			"providers":       len(response.Providers),
			"errors":          len(response.Errors),
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, response)
	}
}

// parseSearchQuery builds a SearchQuery from query parameters, applying
// defaults and clamps, then validates it. The returned message is empty
// on success and ready for the 400 body otherwise.
func parseSearchQuery(c echo.Context, cfg *config.Config) (*models.SearchQuery, string) {
	q := &models.SearchQuery{
		Title:       strings.TrimSpace(c.QueryParam("title")),
		Zip:         strings.TrimSpace(c.QueryParam("zip")),
		RadiusMiles: utils.ParseInt(c.QueryParam("radius"), cfg.Search.DefaultRadiusMiles),
		Days:        utils.ParseInt(c.QueryParam("days"), cfg.Search.DefaultDays),
		TitleStrict: c.QueryParam("titleStrict") == "1",
	}

	// page and pageSize are clamped rather than rejected
	page := utils.ParseInt(c.QueryParam("page"), 1)
	if page < 1 {
		page = 1
	}
	q.Page = page
	q.PageSize = utils.Clamp(
		utils.ParseInt(c.QueryParam("pageSize"), cfg.Search.DefaultPageSize),
		1, cfg.Search.MaxPageSize)

	// Unknown source ids are ignored, not rejected
	raw := utils.GetStringOrDefault(c.QueryParam("sources"), defaultSources)
	for _, s := range strings.Split(raw, ",") {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			q.Sources = append(q.Sources, s)
		}
	}

	if err := validate.Struct(q); err != nil {
		return nil, validationMessage(err)
	}

	return q, ""
}

// validationMessage maps the first failed field to the wire message the
// browser client has always shown.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].StructField() {
		case "Title":
			return "Missing 'title'."
		case "Zip":
			return "ZIP must be 5 digits."
		case "RadiusMiles":
			return "Invalid 'radius' (miles)."
		case "Days":
			return "Invalid 'days' (0–60)."
		}
	}
	return "Invalid request."
}
