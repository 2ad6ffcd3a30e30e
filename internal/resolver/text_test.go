package resolver_test

import (
	"testing"

	"github.com/LayoffWatch/LW-Pipeline/internal/resolver"
)

const noticeBody = `State of New York Department of Labor
Company: Foo Manufacturing Inc.
Address: 123 Main St, Suite 4, Buffalo, NY 14201
Total Number of Affected Workers: 1,200
Date of Notice: 03/01/2025
Closure Start Date: 05/01/2025
`

// TestExtractFields verifies the label patterns pull each field out of a
// typical notice body.
func TestExtractFields(t *testing.T) {
	f := resolver.ExtractFields(noticeBody)

	if f.Company != "Foo Manufacturing Inc." {
		t.Errorf("Company = %q", f.Company)
	}
	if f.Affected != "1,200" {
		t.Errorf("Affected = %q", f.Affected)
	}
	if f.NoticeDate != "03/01/2025" {
		t.Errorf("NoticeDate = %q", f.NoticeDate)
	}
	if f.Effective != "05/01/2025" {
		t.Errorf("Effective = %q", f.Effective)
	}
	if f.Address != "123 Main St, Suite 4, Buffalo, NY 14201" {
		t.Errorf("Address = %q", f.Address)
	}
}

// TestExtractFields_AlternatePhrasings verifies the pattern lists are tried
// in order and later phrasings still match.
func TestExtractFields_AlternatePhrasings(t *testing.T) {
	f := resolver.ExtractFields("Employer: Bar LLC\nLayoff Start Date: 6/1/2025\nNumber of Affected Employees: 45\n")

	if f.Company != "Bar LLC" {
		t.Errorf("Company = %q", f.Company)
	}
	if f.Effective != "6/1/2025" {
		t.Errorf("Effective = %q", f.Effective)
	}
	if f.Affected != "45" {
		t.Errorf("Affected = %q", f.Affected)
	}
}

// TestExtractFields_MissingLabels verifies absent labels yield empty fields,
// never an error.
func TestExtractFields_MissingLabels(t *testing.T) {
	f := resolver.ExtractFields("nothing resembling a notice")
	if f.Company != "" || f.NoticeDate != "" || f.Address != "" {
		t.Errorf("expected all-empty fields, got %+v", f)
	}
}

// TestCityFromAddress verifies city mining from the state+zip suffix shape.
func TestCityFromAddress(t *testing.T) {
	cases := []struct {
		addr string
		want string
	}{
		{"123 Main St, Suite 4, Buffalo, NY 14201", "Buffalo"},
		{"500 Pearl Street, New York, NY 10007", "New York"},
		{"no zip here", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := resolver.CityFromAddress(c.addr, "NY"); got != c.want {
			t.Errorf("CityFromAddress(%q) = %q, want %q", c.addr, got, c.want)
		}
	}
}
