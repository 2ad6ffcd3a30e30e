package collect

import (
	"context"
	"errors"
	"fmt"

	"github.com/LayoffWatch/LW-Pipeline/internal/resolver"
	"github.com/LayoffWatch/LW-Pipeline/internal/warn"
)

// FL ingests the year-parameterized notice list page: one HTML table, header
// names drift between years.
type FL struct {
	Fetcher *Fetcher
	ListURL string // %d = report year
}

func (c *FL) State() string { return "FL" }

func (c *FL) Collect(ctx context.Context, env Env) ([]warn.Notice, error) {
	url := fmt.Sprintf(c.ListURL, env.Year)
	doc, err := c.Fetcher.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch notice list: %w", err)
	}

	rows := FirstTable(doc)
	if len(rows) < 2 {
		return nil, errors.New("notice table not found or empty")
	}
	cols, err := resolver.ResolveColumns(rows[0])
	if err != nil {
		return nil, fmt.Errorf("header %v: %w", rows[0], err)
	}

	var out []warn.Notice
	for _, row := range rows[1:] {
		if len(row) < 2 {
			continue
		}
		company := resolver.Cell(row, cols.Company)
		if resolver.SkipRow(company) {
			continue
		}
		n := warn.Notice{
			Company:       company,
			CleanName:     warn.CleanName(company, env.Aliases),
			NoticeDate:    warn.NormalizeDate(resolver.Cell(row, cols.Notice)),
			EffectiveDate: warn.NormalizeDate(resolver.Cell(row, cols.Effective)),
			EmployeeCount: warn.NormalizeCount(resolver.Cell(row, cols.Count)),
			City:          titleCase(resolver.Cell(row, cols.City)),
			State:         c.State(),
			SourceURL:     url,
		}
		n.HashID = n.Identity()
		out = append(out, n)
	}
	return out, nil
}
