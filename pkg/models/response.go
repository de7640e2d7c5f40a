package models

import "time"

// ProviderTotal reports one provider's own match count for the query. It
// is an upper-bound estimate, not the count of jobs returned on the page.
type ProviderTotal struct {
	Source string `json:"source"`
	Total  int    `json:"total"`
}

// ProviderError is a soft per-provider failure surfaced alongside the
// partial results from the providers that did respond.
type ProviderError struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

// SearchResponse is the merged result of an aggregated search.
type SearchResponse struct {
	Total     int             `json:"total"`
	Page      int             `json:"page"`
	PageSize  int             `json:"pageSize"`
	Jobs      []Job           `json:"jobs"`
	Providers []ProviderTotal `json:"providers"`
	Errors    []ProviderError `json:"errors"`
	Source    string          `json:"source"`
}

// ProxySearchResponse is the body of the legacy single-provider endpoints.
type ProxySearchResponse struct {
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Jobs     []Job  `json:"jobs"`
	Source   string `json:"source"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}
