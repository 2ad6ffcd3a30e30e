package notify

import (
	"fmt"
	"strings"

	"github.com/LayoffWatch/LW-Pipeline/internal/warn"
)

// FormatMessage renders one outbound notification. Optional parts drop out
// silently: no city, no "in" clause; zero headcount, no count clause.
func FormatMessage(n warn.Notice) string {
	name := n.CleanName
	if name == "" {
		name = n.Company
	}
	if name == "" {
		name = "Unknown"
	}

	var b strings.Builder
	b.WriteString("🚨 WARN Notice: ")
	b.WriteString(name)

	loc := n.City
	if n.State != "" {
		if loc != "" {
			loc += ", " + n.State
		} else {
			loc = n.State
		}
	}
	if loc != "" {
		b.WriteString(" in ")
		b.WriteString(loc)
	}
	if n.EmployeeCount > 0 {
		fmt.Fprintf(&b, " reporting %d affected employees", n.EmployeeCount)
	}
	b.WriteString(".")
	if n.NoticeDate != "" {
		b.WriteString(" Notice date ")
		b.WriteString(n.NoticeDate)
	}
	if n.SourceURL != "" {
		b.WriteString("\n")
		b.WriteString(n.SourceURL)
	}
	return b.String()
}
