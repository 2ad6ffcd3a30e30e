package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// LoadSnapshot reads the identity set captured at the end of the previous
// aggregation+notification cycle. Absent or corrupt history means everything
// currently published looks new.
func LoadSnapshot(path string) map[string]bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		return map[string]bool{}
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return map[string]bool{}
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// SaveSnapshot replaces the snapshot with the given identities. Snapshots
// supersede, they never merge.
func SaveSnapshot(path string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
