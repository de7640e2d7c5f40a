package models

// SearchQuery is a validated search request. Handlers construct it from
// query parameters and validate it once at the boundary; adapters and the
// aggregator can rely on every field being in range.
type SearchQuery struct {
	Title       string   `json:"title" validate:"required"`
	Zip         string   `json:"zip" validate:"required,zip5"`
	RadiusMiles int      `json:"radius" validate:"min=1"`
	Days        int      `json:"days" validate:"min=0,max=60"`
	Page        int      `json:"page"`
	PageSize    int      `json:"pageSize"`
	Sources     []string `json:"sources"`
	TitleStrict bool     `json:"titleStrict"`
}

// WantsSource reports whether the given provider id was requested.
func (q *SearchQuery) WantsSource(id string) bool {
	for _, s := range q.Sources {
		if s == id {
			return true
		}
	}
	return false
}
