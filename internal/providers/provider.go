// Package providers contains the adapters that turn each upstream job
// search API into a uniform ProviderResult, plus the shared HTTP client
// they fetch through.
package providers

import (
	"context"

	"jobsweep/pkg/models"
)

// Provider is one upstream job source. Implementations are stateless per
// request and safe for concurrent use.
type Provider interface {
	// ID is the stable identifier used in the "sources" query parameter.
	ID() string

	// Name tags jobs and per-provider metadata in responses.
	Name() string

	// Available reports whether the provider has the credentials it needs.
	Available() bool

	// Fetch runs the upstream search. It never returns an error: any
	// failure (missing credentials, timeout, bad status, bad body) is
	// captured in the returned result so one provider can never sink a
	// whole aggregated request.
	Fetch(ctx context.Context, q *models.SearchQuery, page, pageSize int) *models.ProviderResult
}

// Failure builds the result for a failed adapter invocation: zero jobs,
// zero total, the failure reason attached.
func Failure(source, reason string) *models.ProviderResult {
	return &models.ProviderResult{
		Source: source,
		Jobs:   []models.Job{},
		Total:  0,
		Error:  reason,
	}
}
