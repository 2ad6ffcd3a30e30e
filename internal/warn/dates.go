package warn

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts is tried in order; the first layout that parses wins.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"1/2/06",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
}

var embeddedDate = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`)

// NormalizeDate converts a raw source date to YYYY-MM-DD. Unparseable input
// degrades to "" rather than an error: a bad date must never abort a batch.
//
// Besides the textual layouts it accepts Excel serial day numbers, which is
// what workbook cells come back as when the sheet formats them oddly.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	// en dashes show up in "filed 3/4/2025 – updated" style cells
	s = strings.ReplaceAll(s, "–", "-")

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return fromExcelSerial(serial)
	}
	if m := embeddedDate.FindString(s); m != "" && m != s {
		return NormalizeDate(m)
	}
	return ""
}

// fromExcelSerial maps days-since-1899-12-30 to a calendar date. The range
// guard keeps bare integers like report years from masquerading as dates.
func fromExcelSerial(serial float64) string {
	if serial < 20000 || serial > 80000 {
		return ""
	}
	base := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, int(serial)).Format("2006-01-02")
}
