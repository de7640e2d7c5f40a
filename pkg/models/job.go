package models

// Job represents a single normalized job posting. Every provider maps its
// own response shape into this one; missing upstream fields stay empty.
type Job struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	Posted     string `json:"posted"`
	URL        string `json:"url"`
	Snippet    string `json:"snippet"`
	SalaryText string `json:"salaryText"`
	Source     string `json:"source"`
}

// ProviderResult is the outcome of one adapter invocation. A failed call
// still produces a result: zero jobs, zero total and a non-empty Error.
type ProviderResult struct {
	Source string `json:"source"`
	Jobs   []Job  `json:"jobs"`
	Total  int    `json:"total"`
	Error  string `json:"error,omitempty"`
}

// Failed reports whether the adapter invocation produced an error.
func (r *ProviderResult) Failed() bool {
	return r.Error != ""
}
