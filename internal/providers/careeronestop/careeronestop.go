// Package careeronestop adapts the CareerOneStop labor-market API. The
// request is path-segment encoded and the salary signals are notoriously
// inconsistent: numeric fields under several names, or free text.
package careeronestop

import (
	"context"
	"fmt"
	"net/url"

	"jobsweep/internal/config"
	"jobsweep/internal/logging"
	"jobsweep/internal/logging/types"
	"jobsweep/internal/providers"
	"jobsweep/pkg/models"
	"jobsweep/pkg/normalize"
	"jobsweep/pkg/utils"
)

const (
	sourceID   = "cos"
	sourceName = "CareerOneStop"

	sortColumn = "acquisitiondate"
	sortOrder  = "desc"
)

// CareerOneStop implements providers.Provider.
type CareerOneStop struct {
	cfg    *config.Config
	client *providers.Client
	logger types.Logger
}

// New creates the CareerOneStop adapter.
func New(cfg *config.Config, client *providers.Client) *CareerOneStop {
	return &CareerOneStop{
		cfg:    cfg,
		client: client,
		logger: logging.GetGlobalLogger().WithField("provider", sourceID),
	}
}

func (c *CareerOneStop) ID() string   { return sourceID }
func (c *CareerOneStop) Name() string { return sourceName }

// Available reports whether the API token and user id are configured.
func (c *CareerOneStop) Available() bool {
	p := c.cfg.Providers.CareerOneStop
	return p.APIToken != "" && p.UserID != ""
}

type searchResponse struct {
	JobCount interface{}  `json:"JobCount"`
	Jobs     []jobListing `json:"Jobs"`
}

type jobListing struct {
	JvID               string `json:"JvId"`
	JobTitle           string `json:"JobTitle"`
	Company            string `json:"Company"`
	Location           string `json:"Location"`
	AcquisitionDate    string `json:"AcquisitionDate"`
	URL                string `json:"URL"`
	DescriptionSnippet string `json:"DescriptionSnippet"`

	// Salary signals: numeric candidates first, then free-text ones.
	// Typing varies per record, hence interface{} plus coercion.
	MinimumSalary interface{} `json:"MinimumSalary"`
	SalaryMin     interface{} `json:"SalaryMin"`
	WageMin       interface{} `json:"WageMin"`
	MaximumSalary interface{} `json:"MaximumSalary"`
	SalaryMax     interface{} `json:"SalaryMax"`
	WageMax       interface{} `json:"WageMax"`

	Pay            interface{} `json:"Pay"`
	Wage           interface{} `json:"Wage"`
	Salary         interface{} `json:"Salary"`
	PayDescription interface{} `json:"PayDescription"`
}

// Fetch runs the CareerOneStop search. Failures come back inside the result.
func (c *CareerOneStop) Fetch(ctx context.Context, q *models.SearchQuery, page, pageSize int) *models.ProviderResult {
	if !c.Available() {
		return providers.Failure(sourceName, "CareerOneStop credentials missing")
	}

	p := c.cfg.Providers.CareerOneStop
	startRecord := (page - 1) * pageSize

	endpoint := fmt.Sprintf("%s/v2/jobsearch/%s/%s/%s/%d/%s/%s/%d/%d/%d?enableJobDescriptionSnippet=true&enableMetaData=false",
		trimSlash(p.BaseURL),
		url.PathEscape(p.UserID),
		url.PathEscape(q.Title),
		url.PathEscape(q.Zip),
		q.RadiusMiles,
		sortColumn,
		sortOrder,
		startRecord,
		pageSize,
		q.Days)

	headers := map[string]string{
		"Authorization": "Bearer " + p.APIToken,
	}

	var resp searchResponse
	if err := c.client.GetJSON(ctx, sourceID, endpoint, headers, &resp); err != nil {
		c.logger.Warn("CareerOneStop search failed", map[string]interface{}{"error": err.Error()})
		return providers.Failure(sourceName, err.Error())
	}

	jobs := make([]models.Job, 0, len(resp.Jobs))
	for _, r := range resp.Jobs {
		jobs = append(jobs, models.Job{
			ID:         r.JvID,
			Title:      r.JobTitle,
			Company:    r.Company,
			Location:   r.Location,
			Posted:     r.AcquisitionDate,
			URL:        r.URL,
			Snippet:    r.DescriptionSnippet,
			SalaryText: salaryText(&r),
			Source:     sourceName,
		})
	}

	return &models.ProviderResult{
		Source: sourceName,
		Jobs:   jobs,
		Total:  utils.AsInt(resp.JobCount, len(jobs)),
	}
}

// salaryText prefers a numeric range built from whichever min/max variants
// are actually numbers; with no numeric signal at all it falls back to the
// first free-text pay field, used verbatim.
func salaryText(r *jobListing) string {
	candidates := []interface{}{
		r.MinimumSalary, r.SalaryMin, r.WageMin,
		r.MaximumSalary, r.SalaryMax, r.WageMax,
	}

	var nums []float64
	for _, v := range candidates {
		if f, ok := utils.AsFloat64(v); ok {
			nums = append(nums, f)
		}
	}

	if len(nums) > 0 {
		min, max := nums[0], nums[0]
		for _, f := range nums[1:] {
			if f < min {
				min = f
			}
			if f > max {
				max = f
			}
		}
		return normalize.FormatSalaryRange(min, max, "USD", "")
	}

	for _, v := range []interface{}{r.Pay, r.Wage, r.Salary, r.PayDescription} {
		if s := utils.AsString(v); s != "" {
			return s
		}
	}
	return ""
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
