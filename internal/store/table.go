// Package store persists the pipeline's flat-file state: one CSV table per
// source, the curated alias table, and the previous-cycle identity snapshot.
//
// All I/O here is explicit load/save of whole values; nothing keeps hidden
// ambient state, which is what lets the merge and aggregation logic run
// against in-memory fakes in tests.
package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/LayoffWatch/LW-Pipeline/internal/warn"
)

// Load reads a store file into memory. A missing or unreadable file is an
// empty store: first runs and corrupt-file recovery both land here, and
// neither may fail an ingestion.
func Load(path string) []warn.Notice {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil || len(records) < 2 {
		return nil
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	get := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	out := make([]warn.Notice, 0, len(records)-1)
	for _, rec := range records[1:] {
		count, _ := strconv.Atoi(strings.TrimSpace(get(rec, "employee_count")))
		out = append(out, warn.Notice{
			HashID:        get(rec, "hash_id"),
			Company:       get(rec, "company"),
			CleanName:     get(rec, "clean_name"),
			NoticeDate:    get(rec, "notice_date"),
			EffectiveDate: get(rec, "effective_date"),
			EmployeeCount: count,
			City:          get(rec, "city"),
			State:         get(rec, "state"),
			SourceURL:     get(rec, "source_url"),
		})
	}
	return out
}

// Save fully rewrites the store file, header always included. The write goes
// through a temp file and rename so a failed run leaves the previous store
// untouched.
func Save(path string, notices []warn.Notice) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".store-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(warn.Columns); err != nil {
		tmp.Close()
		return err
	}
	for _, n := range notices {
		if err := w.Write(record(n)); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func record(n warn.Notice) []string {
	return []string{
		n.HashID,
		n.Company,
		n.CleanName,
		n.NoticeDate,
		n.EffectiveDate,
		strconv.Itoa(n.EmployeeCount),
		n.City,
		n.State,
		n.SourceURL,
	}
}
