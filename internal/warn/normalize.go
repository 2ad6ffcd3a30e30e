package warn

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonDigit = regexp.MustCompile(`[^0-9]`)
	nonKey   = regexp.MustCompile(`[^a-z0-9\s]+`)
	spaces   = regexp.MustCompile(`\s+`)
)

// NormalizeCount extracts a headcount from noisy cell text such as
// "1,200 (Temporary)". Anything without a digit run counts as zero.
func NormalizeCount(raw string) int {
	digits := nonDigit.ReplaceAllString(raw, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// NormalizeKey reduces a company name to its alias-table lookup key:
// lower-cased, punctuation stripped, whitespace collapsed. Idempotent.
func NormalizeKey(name string) string {
	s := strings.ToLower(name)
	s = nonKey.ReplaceAllString(s, " ")
	s = spaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CleanName rewrites a company name through the curated alias table. Names
// without an alias pass through trimmed but otherwise untouched; aliasing is
// one level only.
func CleanName(name string, aliases map[string]string) string {
	raw := strings.TrimSpace(name)
	if alias, ok := aliases[NormalizeKey(raw)]; ok {
		return alias
	}
	return raw
}
