package utils_test

import (
	"strings"
	"testing"

	"jobsweep/pkg/utils"
)

func TestParseInt(t *testing.T) {
	cases := []struct {
		in   string
		def  int
		want int
	}{
		{"42", 0, 42},
		{"-7", 0, -7},
		{" 10 ", 0, 10},
		{"", 25, 25},
		{"abc", 25, 25},
		{"3.5", 25, 25},
	}
	for _, c := range cases {
		if got := utils.ParseInt(c.in, c.def); got != c.want {
			t.Errorf("ParseInt(%q, %d) = %d, want %d", c.in, c.def, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		n, lo, hi, want int
	}{
		{5, 1, 10, 5},
		{0, 1, 10, 1},
		{99, 1, 10, 10},
		{1, 1, 10, 1},
		{10, 1, 10, 10},
	}
	for _, c := range cases {
		if got := utils.Clamp(c.n, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", c.n, c.lo, c.hi, got, c.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := utils.Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short, 10) = %q", got)
	}
	long := strings.Repeat("x", 500)
	got := utils.Truncate(long, 400)
	if len(got) != 403 || !strings.HasSuffix(got, "...") {
		t.Errorf("Truncate kept %d bytes, want 400 plus ellipsis", len(got))
	}
}

func TestAsFloat64(t *testing.T) {
	cases := []struct {
		in   interface{}
		want float64
		ok   bool
	}{
		{50000.0, 50000, true},
		{"50000", 50000, true},
		{" 50000.5 ", 50000.5, true},
		{"", 0, false},
		{"n/a", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, c := range cases {
		got, ok := utils.AsFloat64(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("AsFloat64(%v) = (%v, %v), want (%v, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestAsInt(t *testing.T) {
	if got := utils.AsInt("87", -1); got != 87 {
		t.Errorf("AsInt(\"87\") = %d", got)
	}
	if got := utils.AsInt(nil, -1); got != -1 {
		t.Errorf("AsInt(nil) = %d, want default", got)
	}
	if got := utils.AsInt(12.9, -1); got != 12 {
		t.Errorf("AsInt(12.9) = %d, want truncation", got)
	}
}

func TestAsString(t *testing.T) {
	if got := utils.AsString("Competitive"); got != "Competitive" {
		t.Errorf("AsString(string) = %q", got)
	}
	if got := utils.AsString(42.0); got != "" {
		t.Errorf("AsString(number) = %q, want empty", got)
	}
	if got := utils.AsString(nil); got != "" {
		t.Errorf("AsString(nil) = %q, want empty", got)
	}
}
