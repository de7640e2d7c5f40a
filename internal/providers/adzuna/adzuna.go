// Package adzuna adapts the Adzuna job board API. Salary comes as
// numeric min/max plus a currency code; results are requested newest
// first with the search radius converted from miles to kilometers.
package adzuna

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"jobsweep/internal/config"
	"jobsweep/internal/logging"
	"jobsweep/internal/logging/types"
	"jobsweep/internal/providers"
	"jobsweep/pkg/models"
	"jobsweep/pkg/normalize"
	"jobsweep/pkg/utils"
)

const (
	sourceID   = "adzuna"
	sourceName = "Adzuna"

	milesToKm = 1.60934
)

// Adzuna implements providers.Provider.
type Adzuna struct {
	cfg    *config.Config
	client *providers.Client
	logger types.Logger
}

// New creates the Adzuna adapter.
func New(cfg *config.Config, client *providers.Client) *Adzuna {
	return &Adzuna{
		cfg:    cfg,
		client: client,
		logger: logging.GetGlobalLogger().WithField("provider", sourceID),
	}
}

func (a *Adzuna) ID() string   { return sourceID }
func (a *Adzuna) Name() string { return sourceName }

// Available reports whether the app id/key pair is configured.
func (a *Adzuna) Available() bool {
	p := a.cfg.Providers.Adzuna
	return p.AppID != "" && p.AppKey != ""
}

type searchResponse struct {
	Count   interface{}  `json:"count"`
	Results []jobListing `json:"results"`
}

type jobListing struct {
	ID             interface{} `json:"id"`
	Title          string      `json:"title"`
	Company        displayName `json:"company"`
	Location       displayName `json:"location"`
	Created        string      `json:"created"`
	RedirectURL    string      `json:"redirect_url"`
	Description    string      `json:"description"`
	SalaryMin      interface{} `json:"salary_min"`
	SalaryMax      interface{} `json:"salary_max"`
	SalaryCurrency string      `json:"salary_currency"`
}

type displayName struct {
	DisplayName string `json:"display_name"`
}

// Fetch runs the Adzuna search. Failures come back inside the result.
func (a *Adzuna) Fetch(ctx context.Context, q *models.SearchQuery, page, pageSize int) *models.ProviderResult {
	if !a.Available() {
		return providers.Failure(sourceName, "Adzuna credentials missing")
	}

	p := a.cfg.Providers.Adzuna
	country := strings.ToLower(utils.GetStringOrDefault(p.Country, "us"))

	km := int(math.Round(float64(q.RadiusMiles) * milesToKm))
	if km < 1 {
		km = 1
	}

	qs := url.Values{}
	qs.Set("app_id", p.AppID)
	qs.Set("app_key", p.AppKey)
	qs.Set("results_per_page", strconv.Itoa(pageSize))
	qs.Set("what", q.Title)
	qs.Set("where", q.Zip)
	qs.Set("distance", strconv.Itoa(km))
	qs.Set("sort_by", "date")
	qs.Set("content-type", "application/json")
	if q.Days > 0 {
		qs.Set("max_days_old", strconv.Itoa(q.Days))
	}

	endpoint := fmt.Sprintf("%s/v1/api/jobs/%s/search/%d?%s",
		strings.TrimRight(p.BaseURL, "/"), url.PathEscape(country), page, qs.Encode())

	var resp searchResponse
	if err := a.client.GetJSON(ctx, sourceID, endpoint, nil, &resp); err != nil {
		a.logger.Warn("Adzuna search failed", map[string]interface{}{"error": err.Error()})
		return providers.Failure(sourceName, err.Error())
	}

	jobs := make([]models.Job, 0, len(resp.Results))
	for _, r := range resp.Results {
		min, max := math.NaN(), math.NaN()
		if v, ok := utils.AsFloat64(r.SalaryMin); ok {
			min = v
		}
		if v, ok := utils.AsFloat64(r.SalaryMax); ok {
			max = v
		}
		currency := utils.GetStringOrDefault(r.SalaryCurrency, "USD")

		jobs = append(jobs, models.Job{
			ID:         idString(r.ID),
			Title:      r.Title,
			Company:    r.Company.DisplayName,
			Location:   r.Location.DisplayName,
			Posted:     r.Created,
			URL:        r.RedirectURL,
			Snippet:    r.Description,
			SalaryText: normalize.FormatSalaryRange(min, max, currency, ""),
			Source:     sourceName,
		})
	}

	return &models.ProviderResult{
		Source: sourceName,
		Jobs:   jobs,
		Total:  utils.AsInt(resp.Count, len(jobs)),
	}
}

// idString renders an upstream id that may arrive as a string or number.
func idString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}
