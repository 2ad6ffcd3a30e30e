// Package resolver locates the canonical notice fields inside source data
// whose shape is only approximately self-describing: tables with floating
// header rows and drifting column names, or free-text document bodies.
//
// Every operation here is total. Callers get a best-effort value or an
// explicit absent sentinel; nothing throws past this boundary except the
// single hard abort for a table missing its company or notice-date column.
package resolver

import (
	"errors"
	"strings"
)

// headerScanLimit caps how many leading rows are scanned for the real header.
// Government spreadsheets like to put "Report as of ..." banners above it.
const headerScanLimit = 20

// ErrMissingColumns aborts a tabular batch: without a company and a
// notice-date column there is nothing safe to ingest.
var ErrMissingColumns = errors.New("resolver: company or notice date column not found")

// Synonym labels per canonical field, most specific first. Matching runs the
// whole list exact (case-insensitive) before falling back to substring
// containment, so "notice date" beats a column merely containing "date".
var (
	companyLabels   = []string{"company", "company name", "employer", "employer name", "business name"}
	cityLabels      = []string{"city", "location city", "worksite city", "location"}
	noticeLabels    = []string{"notice date", "received date", "date received", "warn received date", "date of notice", "warn date", "notice"}
	effectiveLabels = []string{"effective date", "layoff date", "separation date", "closure/layoff date", "closure date", "layoff"}
	countLabels     = []string{"no. of employees", "number of employees", "employees affected", "number affected", "total affected", "number of workers", "affected", "employees"}
)

// Columns holds the resolved column index per canonical field; -1 marks a
// field absent from the source table. Absent optional fields yield empty
// values downstream, not errors.
type Columns struct {
	Company   int
	City      int
	Notice    int
	Effective int
	Count     int
}

// FindHeaderRow scans the leading rows for the first one whose joined cell
// text mentions both a company-ish and a notice-date-ish token. The second
// return is false when no such row exists and row 0 is being assumed; the
// caller should log that degraded mode.
func FindHeaderRow(rows [][]string) (int, bool) {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for i := 0; i < limit; i++ {
		joined := strings.ToLower(strings.Join(rows[i], " "))
		hasCompany := strings.Contains(joined, "company") || strings.Contains(joined, "employer")
		hasDate := strings.Contains(joined, "notice") && strings.Contains(joined, "date")
		if hasCompany && hasDate {
			return i, true
		}
	}
	return 0, false
}

// ResolveColumns maps header cells onto the canonical fields. The partial
// Columns value is returned alongside ErrMissingColumns so the abort can be
// reported with what was found.
func ResolveColumns(header []string) (Columns, error) {
	cols := Columns{
		Company:   pickColumn(header, companyLabels),
		City:      pickColumn(header, cityLabels),
		Notice:    pickColumn(header, noticeLabels),
		Effective: pickColumn(header, effectiveLabels),
		Count:     pickColumn(header, countLabels),
	}
	if cols.Company < 0 || cols.Notice < 0 {
		return cols, ErrMissingColumns
	}
	return cols, nil
}

func pickColumn(header []string, labels []string) int {
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}
	for _, label := range labels {
		for i, c := range cells {
			if c == label {
				return i
			}
		}
	}
	for _, label := range labels {
		for i, c := range cells {
			if strings.Contains(c, label) {
				return i
			}
		}
	}
	return -1
}

// Cell returns the trimmed cell at idx, tolerating short rows and absent
// (-1) columns.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// headerRepeats are literals some sources re-emit mid-table when a report
// spans pages.
var headerRepeats = map[string]bool{
	"company name":  true,
	"company":       true,
	"employer":      true,
	"employer name": true,
}

// SkipRow reports whether a data row's company cell marks parse noise rather
// than a notice: empty cells and header-repeat literals.
func SkipRow(company string) bool {
	if company == "" {
		return true
	}
	return headerRepeats[strings.ToLower(company)]
}
