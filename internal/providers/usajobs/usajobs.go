// Package usajobs adapts the USAJOBS federal jobs API. Remuneration is an
// array of range entries with a rate-interval code, and the posting link
// and date fall back across several candidate fields.
package usajobs

import (
	"context"
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
	sourceID   = "usajobs"
	sourceName = "USAJOBS"
)

// USAJobs implements providers.Provider.
type USAJobs struct {
	cfg    *config.Config
	client *providers.Client
	logger types.Logger
}

// New creates the USAJOBS adapter.
func New(cfg *config.Config, client *providers.Client) *USAJobs {
	return &USAJobs{
		cfg:    cfg,
		client: client,
		logger: logging.GetGlobalLogger().WithField("provider", sourceID),
	}
}

func (u *USAJobs) ID() string   { return sourceID }
func (u *USAJobs) Name() string { return sourceName }

// Available reports whether the auth key and the registered user agent
// are configured. USAJOBS rejects calls without both.
func (u *USAJobs) Available() bool {
	p := u.cfg.Providers.USAJobs
	return p.AuthKey != "" && p.UserAgent != ""
}

type searchResponse struct {
	SearchResult struct {
		SearchResultCountAll interface{}  `json:"SearchResultCountAll"`
		SearchResultItems    []resultItem `json:"SearchResultItems"`
	} `json:"SearchResult"`
}

type resultItem struct {
	MatchedObjectID         string     `json:"MatchedObjectId"`
	MatchedObjectDescriptor descriptor `json:"MatchedObjectDescriptor"`
}

type descriptor struct {
	PositionID              string   `json:"PositionID"`
	PositionTitle           string   `json:"PositionTitle"`
	OrganizationName        string   `json:"OrganizationName"`
	DepartmentName          string   `json:"DepartmentName"`
	PositionLocationDisplay string   `json:"PositionLocationDisplay"`
	PublicationStartDate    string   `json:"PublicationStartDate"`
	OpenDate                string   `json:"OpenDate"`
	OpeningDate             string   `json:"OpeningDate"`
	ApplyURI                []string `json:"ApplyURI"`
	PositionURI             string   `json:"PositionURI"`

	PositionRemuneration []remuneration `json:"PositionRemuneration"`

	UserArea struct {
		Details struct {
			JobSummary string `json:"JobSummary"`
		} `json:"Details"`
	} `json:"UserArea"`
}

type remuneration struct {
	// Ranges arrive as digit strings, hence interface{} plus coercion.
	MinimumRange            interface{} `json:"MinimumRange"`
	MaximumRange            interface{} `json:"MaximumRange"`
	RateIntervalCode        string      `json:"RateIntervalCode"`
	RateIntervalDescription string      `json:"RateIntervalDescription"`
	CurrencyCode            string      `json:"CurrencyCode"`
}

// Fetch runs the USAJOBS search. Failures come back inside the result.
func (u *USAJobs) Fetch(ctx context.Context, q *models.SearchQuery, page, pageSize int) *models.ProviderResult {
	if !u.Available() {
		return providers.Failure(sourceName, "USAJOBS credentials missing")
	}

	p := u.cfg.Providers.USAJobs

	qs := url.Values{}
	qs.Set("PositionTitle", q.Title)
	qs.Set("LocationName", q.Zip)
	qs.Set("Radius", strconv.Itoa(q.RadiusMiles))
	qs.Set("ResultsPerPage", strconv.Itoa(pageSize))
	qs.Set("Page", strconv.Itoa(page))
	if q.Days > 0 {
		qs.Set("DatePosted", strconv.Itoa(q.Days))
	}

	base := strings.TrimRight(p.BaseURL, "/")
	endpoint := base + "/api/Search?" + qs.Encode()

	headers := map[string]string{
		"User-Agent":        p.UserAgent,
		"Authorization-Key": p.AuthKey,
	}
	if host := normalize.Host(base); host != "" {
		headers["Host"] = host
	}

	var resp searchResponse
	if err := u.client.GetJSON(ctx, sourceID, endpoint, headers, &resp); err != nil {
		u.logger.Warn("USAJOBS search failed", map[string]interface{}{"error": err.Error()})
		return providers.Failure(sourceName, err.Error())
	}

	items := resp.SearchResult.SearchResultItems
	jobs := make([]models.Job, 0, len(items))
	for _, it := range items {
		m := it.MatchedObjectDescriptor

		link := m.PositionURI
		if len(m.ApplyURI) > 0 {
			link = m.ApplyURI[0]
		}

		posted := firstNonEmpty(m.PublicationStartDate, m.OpenDate, m.OpeningDate)

		id := firstNonEmpty(it.MatchedObjectID, m.PositionID, link)

		jobs = append(jobs, models.Job{
			ID:         id,
			Title:      m.PositionTitle,
			Company:    firstNonEmpty(m.OrganizationName, m.DepartmentName),
			Location:   m.PositionLocationDisplay,
			Posted:     posted,
			URL:        link,
			Snippet:    m.UserArea.Details.JobSummary,
			SalaryText: salaryText(m.PositionRemuneration),
			Source:     sourceName,
		})
	}

	return &models.ProviderResult{
		Source: sourceName,
		Jobs:   jobs,
		Total:  utils.AsInt(resp.SearchResult.SearchResultCountAll, len(jobs)),
	}
}

// salaryText collapses the remuneration entries into one range: the
// lowest of the minimums against the highest of the maximums, with the
// unit taken from the first entry's rate-interval code.
func salaryText(rem []remuneration) string {
	if len(rem) == 0 {
		return ""
	}

	currency := utils.GetStringOrDefault(rem[0].CurrencyCode, "USD")
	unit := rateUnit(utils.GetStringOrDefault(rem[0].RateIntervalCode, rem[0].RateIntervalDescription))

	min, max := math.NaN(), math.NaN()
	for _, r := range rem {
		if v, ok := utils.AsFloat64(r.MinimumRange); ok {
			if math.IsNaN(min) || v < min {
				min = v
			}
		}
		if v, ok := utils.AsFloat64(r.MaximumRange); ok {
			if math.IsNaN(max) || v > max {
				max = v
			}
		}
	}

	return normalize.FormatSalaryRange(min, max, currency, unit)
}

// rateUnit maps a rate-interval code or description to a display unit by
// case-insensitive substring, first match wins.
func rateUnit(code string) string {
	m := strings.ToLower(code)
	switch {
	case strings.Contains(m, "year"):
		return "yr"
	case strings.Contains(m, "hour"):
		return "hr"
	case strings.Contains(m, "week"):
		return "wk"
	case strings.Contains(m, "month"):
		return "mo"
	case strings.Contains(m, "day"):
		return "day"
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
