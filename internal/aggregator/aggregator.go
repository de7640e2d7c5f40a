// Package aggregator fans a validated search out to every requested
// provider concurrently, waits for all of them to settle, and merges the
// outcomes into one deduplicated, recency-sorted page.
package aggregator

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"jobsweep/internal/config"
	"jobsweep/internal/logging"
	"jobsweep/internal/logging/types"
	"jobsweep/internal/providers"
	"jobsweep/pkg/models"
	"jobsweep/pkg/normalize"
)

// Aggregator orchestrates the provider fan-out. Provider order is fixed
// at construction and decides which copy of a duplicate posting survives.
type Aggregator struct {
	cfg       *config.Config
	providers []providers.Provider
	logger    types.Logger
}

// New creates an aggregator over the given providers, invoked in the
// order given.
func New(cfg *config.Config, provs ...providers.Provider) *Aggregator {
	return &Aggregator{
		cfg:       cfg,
		providers: provs,
		logger:    logging.GetGlobalLogger().WithField("component", "aggregator"),
	}
}

// Search runs the aggregated search for an already-validated query.
//
// Every requested provider is called concurrently with the same page and
// page size; the join waits for all of them, success or failure. The
// response page is the head of the merged set: per-provider pagination is
// not coordinated globally, so re-slicing by page number would not yield
// disjoint pages anyway. The response total is the largest total any one
// provider reported, an upper-bound estimate for the client's pager.
func (a *Aggregator) Search(ctx context.Context, q *models.SearchQuery) *models.SearchResponse {
	selected := make([]providers.Provider, 0, len(a.providers))
	for _, p := range a.providers {
		if q.WantsSource(p.ID()) {
			selected = append(selected, p)
		}
	}

	results := make([]*models.ProviderResult, len(selected))
	var wg sync.WaitGroup
	for i, p := range selected {
		wg.Add(1)
		go func(i int, p providers.Provider) {
			defer wg.Done()
			results[i] = a.fetchOne(ctx, p, q)
		}(i, p)
	}
	wg.Wait()

	all := make([]models.Job, 0)
	totals := make([]models.ProviderTotal, 0, len(selected))
	errs := make([]models.ProviderError, 0)
	for _, r := range results {
		totals = append(totals, models.ProviderTotal{Source: r.Source, Total: r.Total})
		if r.Failed() {
			errs = append(errs, models.ProviderError{Source: r.Source, Error: r.Error})
		}
		all = append(all, r.Jobs...)
	}

	merged := Dedupe(all)
	if q.TitleStrict {
		merged = filterByTitle(merged, q.Title)
	}
	sortByRecency(merged)

	if len(merged) > q.PageSize {
		merged = merged[:q.PageSize]
	}

	total := 0
	for _, t := range totals {
		if t.Total > total {
			total = t.Total
		}
	}

	return &models.SearchResponse{
		Total:     total,
		Page:      q.Page,
		PageSize:  q.PageSize,
		Jobs:      merged,
		Providers: totals,
		Errors:    errs,
		Source:    "aggregated",
	}
}

// fetchOne isolates a single adapter call. A panicking adapter becomes an
// error entry instead of taking down the whole request.
func (a *Aggregator) fetchOne(ctx context.Context, p providers.Provider, q *models.SearchQuery) (result *models.ProviderResult) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("Provider panicked", map[string]interface{}{
				"source": p.Name(),
				"panic":  fmt.Sprint(r),
			})
			result = providers.Failure(p.Name(), fmt.Sprintf("panic: %v", r))
		}
	}()

	start := time.Now()
	result = p.Fetch(ctx, q, q.Page, q.PageSize)

	a.logger.Debug("Provider settled", map[string]interface{}{
		"source":   p.Name(),
		"jobs":     len(result.Jobs),
		"total":    result.Total,
		"failed":   result.Failed(),
		"duration": time.Since(start).String(),
	})
	return result
}

// Dedupe keeps the first occurrence of each posting. Identity is content
// based (normalized title, company, URL host and location), not id based:
// per-provider ids can collide across providers.
func Dedupe(jobs []models.Job) []models.Job {
	seen := make(map[string]struct{}, len(jobs))
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		key := strings.Join([]string{
			normalize.Key(j.Title),
			normalize.Key(j.Company),
			normalize.Host(j.URL),
			normalize.Key(j.Location),
		}, "|")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, j)
	}
	return out
}

// filterByTitle keeps jobs whose title contains the search term as a
// case-insensitive substring.
func filterByTitle(jobs []models.Job, title string) []models.Job {
	needle := strings.ToLower(title)
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if strings.Contains(strings.ToLower(j.Title), needle) {
			out = append(out, j)
		}
	}
	return out
}

// sortByRecency orders jobs newest first; unparsable posting dates sort
// as epoch zero, i.e. last.
func sortByRecency(jobs []models.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return normalize.SortTime(jobs[i].Posted) > normalize.SortTime(jobs[j].Posted)
	})
}
