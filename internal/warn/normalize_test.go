package warn_test

import (
	"testing"

	"github.com/LayoffWatch/LW-Pipeline/internal/warn"
)

// TestNormalizeCount verifies headcount extraction degrades to zero on
// anything without digits, and strips commas and footnote text.
func TestNormalizeCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1,200 (Temporary)", 1200},
		{"", 0},
		{"N/A", 0},
		{"150", 150},
		{" 42 employees ", 42},
		{"unknown", 0},
	}
	for _, c := range cases {
		if got := warn.NormalizeCount(c.in); got != c.want {
			t.Errorf("NormalizeCount(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

// TestNormalizeKey verifies the alias lookup key: lower-cased, punctuation
// stripped, whitespace collapsed, and idempotent.
func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Acme Corp.,  Inc.", "acme corp inc"},
		{"  FOO   BAR ", "foo bar"},
		{"", ""},
		{"A&B Holdings (USA)", "a b holdings usa"},
	}
	for _, c := range cases {
		got := warn.NormalizeKey(c.in)
		if got != c.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", c.in, got, c.want)
		}
		if again := warn.NormalizeKey(got); again != got {
			t.Errorf("NormalizeKey not idempotent: %q -> %q", got, again)
		}
	}
}

// TestCleanName verifies alias substitution and the pass-through fallback
// for names with no curated alias.
func TestCleanName(t *testing.T) {
	table := map[string]string{"acme corp inc": "Acme Corporation"}

	if got := warn.CleanName("Acme Corp., Inc.", table); got != "Acme Corporation" {
		t.Errorf("aliased name = %q, want %q", got, "Acme Corporation")
	}
	if got := warn.CleanName("Unknown LLC", map[string]string{}); got != "Unknown LLC" {
		t.Errorf("unaliased name = %q, want %q", got, "Unknown LLC")
	}
	if got := warn.CleanName("  Foo Inc  ", nil); got != "Foo Inc" {
		t.Errorf("expected trimmed pass-through, got %q", got)
	}
}

// TestNormalizeDate verifies the format cascade: ISO, slash dates with 2- and
// 4-digit years, month names, embedded dates inside surrounding text, Excel
// serials, and the empty degradation for garbage.
func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-03-01", "2025-03-01"},
		{"3/1/2025", "2025-03-01"},
		{"03/01/2025", "2025-03-01"},
		{"3/1/25", "2025-03-01"},
		{"March 1, 2025", "2025-03-01"},
		{"Mar 1, 2025", "2025-03-01"},
		{"Received 3/1/2025 via mail", "2025-03-01"},
		{"45810", "2025-06-02"},
		{"", ""},
		{"pending", ""},
		{"2025", ""}, // bare year must not become a date
	}
	for _, c := range cases {
		if got := warn.NormalizeDate(c.in); got != c.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
