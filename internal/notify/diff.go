// Package notify turns the freshly built dataset into change notifications:
// diff against the previous cycle's snapshot, rank, format, post.
package notify

import (
	"sort"

	"github.com/LayoffWatch/LW-Pipeline/internal/warn"
)

// Diff returns the rows whose identity was not seen in the previous cycle,
// preserving input order.
func Diff(current []warn.Notice, previous map[string]bool) []warn.Notice {
	var out []warn.Notice
	for _, n := range current {
		if !previous[n.HashID] {
			out = append(out, n)
		}
	}
	return out
}

// SelectTop ranks new rows by affected headcount descending and caps the
// outbound message volume per cycle. The sort is stable so equal counts keep
// dataset order.
func SelectTop(rows []warn.Notice, k int) []warn.Notice {
	ranked := make([]warn.Notice, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EmployeeCount > ranked[j].EmployeeCount
	})
	if k >= 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// Identities collects the full identity set of the current dataset. Every
// observed record is marked seen exactly once, notified or not.
func Identities(rows []warn.Notice) []string {
	ids := make([]string, 0, len(rows))
	for _, n := range rows {
		ids = append(ids, n.HashID)
	}
	return ids
}
