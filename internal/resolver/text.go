package resolver

import (
	"regexp"
	"strings"
)

// Label patterns per field, tried in order; the first match anywhere in the
// document body wins. New phrasings are added by appending to a list, not by
// branching.
var (
	companyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Company:\s*(.+)`),
		regexp.MustCompile(`(?i)Employer:\s*(.+)`),
	}
	affectedPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Total Number of Affected Workers:\s*([0-9,]+)`),
		regexp.MustCompile(`(?i)Number of Affected (?:Workers|Employees):\s*([0-9,]+)`),
	}
	noticeDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Date of Notice:\s*(.+)`),
		regexp.MustCompile(`(?i)Notice Date:\s*(.+)`),
	}
	effectivePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Closure Start Date:\s*(.+)`),
		regexp.MustCompile(`(?i)Layoff Start Date:\s*(.+)`),
		regexp.MustCompile(`(?i)Effective Date:\s*(.+)`),
	}
	addressPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Address:\s*(.+)`),
	}
)

// DocumentFields is the raw field set mined from a free-text notice body.
// Values are as-found; date and count normalization happen downstream.
type DocumentFields struct {
	Company    string
	Affected   string
	NoticeDate string
	Effective  string
	Address    string
}

// ExtractFields runs the label patterns over an extracted document body.
// Missing labels leave their field empty; extraction never fails.
func ExtractFields(text string) DocumentFields {
	return DocumentFields{
		Company:    firstMatch(text, companyPatterns),
		Affected:   firstMatch(text, affectedPatterns),
		NoticeDate: firstMatch(text, noticeDatePatterns),
		Effective:  firstMatch(text, effectivePatterns),
		Address:    firstMatch(text, addressPatterns),
	}
}

func firstMatch(text string, patterns []*regexp.Regexp) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// CityFromAddress mines the city out of a one-line postal address by locating
// the state+zip suffix and taking the last comma-part before it.
// "123 Main St, Suite 4, Buffalo, NY 14201" yields "Buffalo". No match, no
// city: never an error.
func CityFromAddress(addr, state string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" || len(state) != 2 {
		return ""
	}
	suffix := regexp.MustCompile(`,?\s*` + regexp.QuoteMeta(strings.ToUpper(state)) + `\s*\d{5}`)
	loc := suffix.FindStringIndex(addr)
	if loc == nil {
		return ""
	}
	parts := strings.Split(addr[:loc[0]], ",")
	for i := len(parts) - 1; i >= 0; i-- {
		if p := strings.TrimSpace(parts[i]); p != "" {
			return p
		}
	}
	return ""
}
