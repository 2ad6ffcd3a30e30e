// Package warn defines the canonical layoff-notice record shared by every
// source collector, the per-source stores, and the published dataset.
package warn

import (
	"strings"

	"github.com/google/uuid"
)

// Columns is the fixed column order for every store file and the published
// dataset. Changing it breaks downstream consumers of the CSV.
var Columns = []string{
	"hash_id",
	"company",
	"clean_name",
	"notice_date",
	"effective_date",
	"employee_count",
	"city",
	"state",
	"source_url",
}

// Notice is one disclosed layoff event at one company/site.
type Notice struct {
	HashID        string
	Company       string
	CleanName     string
	NoticeDate    string // YYYY-MM-DD or empty when unparseable
	EffectiveDate string // same format rules as NoticeDate
	EmployeeCount int
	City          string
	State         string // 2-letter code, set by the collector, never inferred
	SourceURL     string
}

// identityNamespace is stable forever. Changing it would re-key every store
// and make each historical record look new again.
var identityNamespace = uuid.MustParse("b3a4f6de-5a0c-4b7d-9e21-8c4f0a6d2e15")

// ComputeIdentity derives the record's primary key from its five defining
// fields. Two rows that agree on all five are the same notice, no matter
// which run or heuristic produced them.
func ComputeIdentity(company, noticeDate, effectiveDate, city, sourceURL string) string {
	raw := strings.Join([]string{company, noticeDate, effectiveDate, city, sourceURL}, "|")
	return uuid.NewSHA1(identityNamespace, []byte(raw)).String()
}

// Identity recomputes the identity from the notice's current fields.
func (n Notice) Identity() string {
	return ComputeIdentity(n.Company, n.NoticeDate, n.EffectiveDate, n.City, n.SourceURL)
}
