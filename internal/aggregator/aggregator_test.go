package aggregator_test

import (
	"context"
	"testing"

	"jobsweep/internal/aggregator"
	"jobsweep/internal/config"
	"jobsweep/internal/providers"
	"jobsweep/pkg/models"
)

// fakeProvider is a canned Provider for exercising the fan-out.
type fakeProvider struct {
	id     string
	name   string
	result *models.ProviderResult
	panics bool
	calls  int
}

func (f *fakeProvider) ID() string      { return f.id }
func (f *fakeProvider) Name() string    { return f.name }
func (f *fakeProvider) Available() bool { return true }

func (f *fakeProvider) Fetch(ctx context.Context, q *models.SearchQuery, page, pageSize int) *models.ProviderResult {
	f.calls++
	if f.panics {
		panic("upstream adapter exploded")
	}
	return f.result
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Search.DefaultPageSize = 25
	cfg.Search.MaxPageSize = 50
	return cfg
}

func testQuery() *models.SearchQuery {
	return &models.SearchQuery{
		Title:       "nurse",
		Zip:         "94105",
		RadiusMiles: 25,
		Days:        7,
		Page:        1,
		PageSize:    25,
		Sources:     []string{"a", "b", "c"},
	}
}

func ok(source string, total int, jobs ...models.Job) *models.ProviderResult {
	return &models.ProviderResult{Source: source, Jobs: jobs, Total: total}
}

func job(title, company, url, location, posted string) models.Job {
	return models.Job{
		Title: title, Company: company, URL: url,
		Location: location, Posted: posted, Source: "test",
	}
}

func TestSearchMergesAndSortsByRecency(t *testing.T) {
	a := &fakeProvider{id: "a", name: "A", result: ok("A", 2,
		job("Nurse", "Mercy", "https://a.example/1", "Oakland, CA", "2024-03-01T00:00:00Z"),
		job("Nurse Lead", "Kaiser", "https://a.example/2", "Oakland, CA", "2024-03-03T00:00:00Z"),
	)}
	b := &fakeProvider{id: "b", name: "B", result: ok("B", 1,
		job("Night Nurse", "Sutter", "https://b.example/1", "Fremont, CA", "2024-03-02T00:00:00Z"),
	)}

	resp := aggregator.New(testConfig(), a, b).Search(context.Background(), testQuery())

	if len(resp.Jobs) != 3 {
		t.Fatalf("got %d jobs, want 3", len(resp.Jobs))
	}
	wantOrder := []string{"Nurse Lead", "Night Nurse", "Nurse"}
	for i, want := range wantOrder {
		if resp.Jobs[i].Title != want {
			t.Errorf("jobs[%d].Title = %q, want %q", i, resp.Jobs[i].Title, want)
		}
	}
	if resp.Source != "aggregated" {
		t.Errorf("Source = %q, want aggregated", resp.Source)
	}
}

func TestSearchUnparsableDatesSortLast(t *testing.T) {
	a := &fakeProvider{id: "a", name: "A", result: ok("A", 2,
		job("No Date", "Acme", "https://a.example/1", "Reno, NV", "whenever"),
		job("Dated", "Acme", "https://a.example/2", "Reno, NV", "2024-01-01"),
	)}

	resp := aggregator.New(testConfig(), a).Search(context.Background(), testQuery())

	if resp.Jobs[len(resp.Jobs)-1].Title != "No Date" {
		t.Errorf("unparsable date should sort last, got order %v", titles(resp.Jobs))
	}
}

func TestSearchDedupeFirstProviderWins(t *testing.T) {
	dup := job("Nurse", "Mercy Health", "https://jobs.example/apply/1", "Oakland, CA", "2024-03-01")
	dupCopy := dup
	dupCopy.Source = "second"
	dupCopy.URL = "https://www.jobs.example/apply/9" // same host, different path

	a := &fakeProvider{id: "a", name: "A", result: ok("A", 1, dup)}
	b := &fakeProvider{id: "b", name: "B", result: ok("B", 1, dupCopy)}

	resp := aggregator.New(testConfig(), a, b).Search(context.Background(), testQuery())

	if len(resp.Jobs) != 1 {
		t.Fatalf("got %d jobs, want 1 after dedupe", len(resp.Jobs))
	}
	if resp.Jobs[0].Source != "test" {
		t.Errorf("dedupe kept Source %q, want first provider's copy", resp.Jobs[0].Source)
	}
}

func TestSearchTitleStrictFilters(t *testing.T) {
	a := &fakeProvider{id: "a", name: "A", result: ok("A", 2,
		job("Registered Nurse", "Mercy", "https://a.example/1", "Oakland, CA", "2024-03-01"),
		job("Medical Assistant", "Mercy", "https://a.example/2", "Oakland, CA", "2024-03-02"),
	)}

	q := testQuery()
	q.TitleStrict = true
	resp := aggregator.New(testConfig(), a).Search(context.Background(), q)

	if len(resp.Jobs) != 1 || resp.Jobs[0].Title != "Registered Nurse" {
		t.Errorf("titleStrict kept %v, want only Registered Nurse", titles(resp.Jobs))
	}
}

func TestSearchPartialFailure(t *testing.T) {
	a := &fakeProvider{id: "a", name: "A", result: ok("A", 40,
		job("Nurse", "Mercy", "https://a.example/1", "Oakland, CA", "2024-03-01"),
		job("Nurse II", "Mercy", "https://a.example/2", "Oakland, CA", "2024-03-02"),
	)}
	b := &fakeProvider{id: "b", name: "B", result: providers.Failure("B", "HTTP 503")}

	resp := aggregator.New(testConfig(), a, b).Search(context.Background(), testQuery())

	if len(resp.Jobs) != 2 {
		t.Errorf("got %d jobs, want the 2 from the healthy provider", len(resp.Jobs))
	}
	if len(resp.Providers) != 2 {
		t.Errorf("got %d provider totals, want one per settled provider", len(resp.Providers))
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Source != "B" || resp.Errors[0].Error != "HTTP 503" {
		t.Errorf("errors = %+v, want single HTTP 503 entry for B", resp.Errors)
	}
	if resp.Total != 40 {
		t.Errorf("Total = %d, want max provider total 40", resp.Total)
	}
}

func TestSearchAllProvidersFail(t *testing.T) {
	a := &fakeProvider{id: "a", name: "A", result: providers.Failure("A", "HTTP 500")}
	b := &fakeProvider{id: "b", name: "B", result: providers.Failure("B", "request timed out")}

	resp := aggregator.New(testConfig(), a, b).Search(context.Background(), testQuery())

	if len(resp.Jobs) != 0 {
		t.Errorf("got %d jobs, want 0", len(resp.Jobs))
	}
	if len(resp.Errors) != 2 {
		t.Errorf("got %d errors, want 2", len(resp.Errors))
	}
	if len(resp.Providers) != 2 {
		t.Errorf("got %d provider totals, want 2", len(resp.Providers))
	}
	if resp.Total != 0 {
		t.Errorf("Total = %d, want 0", resp.Total)
	}
}

func TestSearchPanicIsolation(t *testing.T) {
	a := &fakeProvider{id: "a", name: "A", result: ok("A", 1,
		job("Nurse", "Mercy", "https://a.example/1", "Oakland, CA", "2024-03-01"),
	)}
	b := &fakeProvider{id: "b", name: "B", panics: true}

	resp := aggregator.New(testConfig(), a, b).Search(context.Background(), testQuery())

	if len(resp.Jobs) != 1 {
		t.Errorf("got %d jobs, want the 1 from the surviving provider", len(resp.Jobs))
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Source != "B" {
		t.Fatalf("errors = %+v, want a single entry for the panicking provider", resp.Errors)
	}
}

func TestSearchSkipsUnrequestedProviders(t *testing.T) {
	a := &fakeProvider{id: "a", name: "A", result: ok("A", 1,
		job("Nurse", "Mercy", "https://a.example/1", "Oakland, CA", "2024-03-01"),
	)}
	b := &fakeProvider{id: "b", name: "B", result: ok("B", 1,
		job("Other", "Acme", "https://b.example/1", "Reno, NV", "2024-03-02"),
	)}

	q := testQuery()
	q.Sources = []string{"a"}
	resp := aggregator.New(testConfig(), a, b).Search(context.Background(), q)

	if b.calls != 0 {
		t.Errorf("unrequested provider was called %d times", b.calls)
	}
	if len(resp.Providers) != 1 || resp.Providers[0].Source != "A" {
		t.Errorf("providers = %+v, want only A", resp.Providers)
	}
}

func TestSearchPageSizeCapsMergedJobs(t *testing.T) {
	jobs := make([]models.Job, 0, 5)
	for _, u := range []string{"1", "2", "3", "4", "5"} {
		jobs = append(jobs, job("Nurse "+u, "Mercy", "https://a.example/"+u, "Oakland, CA", "2024-03-0"+u))
	}
	a := &fakeProvider{id: "a", name: "A", result: ok("A", 5, jobs...)}

	q := testQuery()
	q.PageSize = 3
	resp := aggregator.New(testConfig(), a).Search(context.Background(), q)

	if len(resp.Jobs) != 3 {
		t.Errorf("got %d jobs, want page size cap of 3", len(resp.Jobs))
	}
	if resp.Total != 5 {
		t.Errorf("Total = %d, want 5", resp.Total)
	}
}

func TestDedupeKeyIgnoresCaseAndWWW(t *testing.T) {
	jobs := []models.Job{
		job("Staff Nurse", "Mercy Health", "https://www.jobs.example/1", "Oakland, CA", "2024-03-01"),
		job("STAFF NURSE", "mercy health", "https://jobs.example/2", "oakland, ca", "2024-03-02"),
		job("Staff Nurse", "Mercy Health", "https://other.example/1", "Oakland, CA", "2024-03-03"),
	}

	out := aggregator.Dedupe(jobs)

	if len(out) != 2 {
		t.Fatalf("Dedupe kept %d jobs, want 2 (same host collapses, distinct host survives)", len(out))
	}
}

func titles(jobs []models.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.Title
	}
	return out
}
