package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// LoadAliases reads the curated company-name alias table: a JSON object from
// normalized lookup key to preferred display name. The table is read-only to
// the pipeline; absence or corruption means no aliasing, never an error.
func LoadAliases(path string) map[string]string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return map[string]string{}
	}
	aliases := map[string]string{}
	if err := json.Unmarshal(raw, &aliases); err != nil {
		return map[string]string{}
	}
	return aliases
}

// EnsureAliases creates an empty alias table when none has been curated yet,
// so the publish directory always carries the file. An existing table is
// never touched.
func EnsureAliases(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte("{}"), 0o644)
}
