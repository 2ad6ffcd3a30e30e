// Package aggregate builds the public dataset from every per-source store.
// The builder owns no state between runs; its output is always derivable
// from the stores plus the active policy.
package aggregate

import (
	"sort"
	"strings"
	"time"

	"github.com/LayoffWatch/LW-Pipeline/internal/warn"
)

// Policy controls which rows make the published dataset. Exactly one
// retention variant is active per run: a trailing WindowDays when set above
// zero, otherwise the current calendar year.
type Policy struct {
	// PlaceholderURLParts marks landing-page rows: a source_url containing
	// any of these substrings is an artifact, not a notice document.
	PlaceholderURLParts []string
	WindowDays          int
	// Now anchors the retention window; zero means wall-clock UTC.
	Now time.Time
}

// DefaultPlaceholders covers the generic WARN landing pages certain sources
// emit when no document link could be pinned down.
var DefaultPlaceholders = []string{
	"warn-worker-adjustment-and-retraining-notification",
}

// Build concatenates the stores, drops placeholder rows, de-duplicates by
// identity (keep-first, in store order), applies retention, and sorts by
// notice date descending. Rows with equal dates keep their input order.
func Build(stores [][]warn.Notice, policy Policy) []warn.Notice {
	now := policy.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	seen := map[string]bool{}
	var out []warn.Notice
	for _, table := range stores {
		for _, n := range table {
			if isPlaceholder(n.SourceURL, policy.PlaceholderURLParts) {
				continue
			}
			if seen[n.HashID] {
				continue
			}
			seen[n.HashID] = true
			if !retained(n.NoticeDate, policy, now) {
				continue
			}
			out = append(out, n)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NoticeDate > out[j].NoticeDate
	})
	return out
}

func isPlaceholder(url string, parts []string) bool {
	for _, p := range parts {
		if p != "" && strings.Contains(url, p) {
			return true
		}
	}
	return false
}

// retained applies the active retention variant. Rows without a parseable
// notice date never publish; they stay in the per-source store for audit.
// The window boundary day itself is inside the window.
func retained(noticeDate string, policy Policy, now time.Time) bool {
	if noticeDate == "" {
		return false
	}
	d, err := time.Parse("2006-01-02", noticeDate)
	if err != nil {
		return false
	}
	if policy.WindowDays > 0 {
		c := now.AddDate(0, 0, -policy.WindowDays)
		cutoff := time.Date(c.Year(), c.Month(), c.Day(), 0, 0, 0, 0, time.UTC)
		return !d.Before(cutoff)
	}
	return d.Year() == now.Year()
}
