package normalize_test

import (
	"math"
	"testing"

	"jobsweep/pkg/normalize"
)

func TestKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Registered Nurse (RN)", "registered nurse rn"},
		{"  Senior   Go\tEngineer ", "senior go engineer"},
		{"C++ Developer!!", "c developer"},
		{"", ""},
		{"---", ""},
	}
	for _, c := range cases {
		if got := normalize.Key(c.in); got != c.want {
			t.Errorf("Key(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestHost(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.adzuna.com/details/123", "adzuna.com"},
		{"https://data.usajobs.gov/job/456?x=1", "data.usajobs.gov"},
		{"not a url", ""},
		{"/relative/path", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := normalize.Host(c.in); got != c.want {
			t.Errorf("Host(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatSalaryRange(t *testing.T) {
	nan := math.NaN()
	cases := []struct {
		name     string
		min, max float64
		currency string
		unit     string
		want     string
	}{
		{"equal bounds collapse", 50000, 50000, "USD", "", "$50,000"},
		{"distinct bounds", 50000, 70000, "USD", "", "$50,000–$70,000"},
		{"only max", nan, 70000, "USD", "", "$70,000"},
		{"only min", 48000, nan, "USD", "", "$48,000"},
		{"both absent", nan, nan, "USD", "", ""},
		{"unit suffix", 30, 45, "USD", "hr", "$30–$45/hr"},
		{"single with unit", 120000, 120000, "USD", "yr", "$120,000/yr"},
		{"rounding collapses near-equal", 49999.6, 50000.4, "USD", "", "$50,000"},
		{"unknown currency falls back to dollar", 1000, nan, "XXX", "", "$1,000"},
		{"gbp symbol", 40000, nan, "GBP", "", "£40,000"},
	}
	for _, c := range cases {
		if got := normalize.FormatSalaryRange(c.min, c.max, c.currency, c.unit); got != c.want {
			t.Errorf("%s: FormatSalaryRange(%v, %v, %q, %q) = %q, want %q",
				c.name, c.min, c.max, c.currency, c.unit, got, c.want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	ok := []string{
		"2024-03-01T12:30:00Z",
		"2024-03-01T12:30:00",
		"2024-03-01",
		"3/1/2024",
	}
	for _, s := range ok {
		if _, parsed := normalize.ParseTimestamp(s); !parsed {
			t.Errorf("ParseTimestamp(%q) failed, want success", s)
		}
	}
	bad := []string{"", "soon", "March the first"}
	for _, s := range bad {
		if _, parsed := normalize.ParseTimestamp(s); parsed {
			t.Errorf("ParseTimestamp(%q) succeeded, want failure", s)
		}
	}
}

func TestSortTime(t *testing.T) {
	newer := normalize.SortTime("2024-03-02T00:00:00Z")
	older := normalize.SortTime("2024-03-01T00:00:00Z")
	if newer <= older {
		t.Errorf("SortTime ordering broken: newer=%d older=%d", newer, older)
	}
	if got := normalize.SortTime("garbage"); got != 0 {
		t.Errorf("SortTime(garbage) = %d, want 0", got)
	}
	if got := normalize.SortTime(""); got != 0 {
		t.Errorf("SortTime(\"\") = %d, want 0", got)
	}
}
