package store

import "github.com/LayoffWatch/LW-Pipeline/internal/warn"

// UpsertBatch merges a freshly collected batch into the existing store.
// First-seen wins: a record whose identity is already stored keeps its
// original fields forever, and applying the same batch twice inserts it once.
// The incoming batch is de-duplicated by identity before comparison, so
// batches need not be internally duplicate-free.
//
// Returns the merged table and how many records were genuinely new.
func UpsertBatch(existing, batch []warn.Notice) ([]warn.Notice, int) {
	seen := make(map[string]bool, len(existing)+len(batch))
	merged := make([]warn.Notice, 0, len(existing)+len(batch))

	for _, n := range existing {
		if seen[n.HashID] {
			continue
		}
		seen[n.HashID] = true
		merged = append(merged, n)
	}

	inserted := 0
	for _, n := range batch {
		if seen[n.HashID] {
			continue
		}
		seen[n.HashID] = true
		merged = append(merged, n)
		inserted++
	}
	return merged, inserted
}
