package collect

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/LayoffWatch/LW-Pipeline/internal/resolver"
	"github.com/LayoffWatch/LW-Pipeline/internal/warn"
)

// CA ingests the EDD workbook. The detailed report sheet carries the data,
// usually behind a few "Report as of ..." preamble rows.
type CA struct {
	Fetcher *Fetcher
	URL     string
}

func (c *CA) State() string { return "CA" }

// preferredSheets is ordered by how the sheet name has drifted over time;
// when none match, the detailed sheet is usually last in the workbook.
var preferredSheets = []string{
	"Detailed WARN Report",
	"Detailed WARN report",
	"Detailed Warn Report",
	"Detailed WARN",
	"Detailed",
}

func (c *CA) Collect(ctx context.Context, env Env) ([]warn.Notice, error) {
	blob, err := c.Fetcher.Get(ctx, c.URL)
	if err != nil {
		return nil, fmt.Errorf("download workbook: %w", err)
	}
	wb, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheet := pickSheet(wb.GetSheetList())
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return c.parse(rows, env)
}

func pickSheet(names []string) string {
	for _, p := range preferredSheets {
		for _, n := range names {
			if n == p {
				return n
			}
		}
	}
	if len(names) == 0 {
		return ""
	}
	return names[len(names)-1]
}

func (c *CA) parse(rows [][]string, env Env) ([]warn.Notice, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	headerIdx, found := resolver.FindHeaderRow(rows)
	if !found {
		env.Log.Warnw("header row not detected, assuming first row", "state", c.State())
	}
	cols, err := resolver.ResolveColumns(rows[headerIdx])
	if err != nil {
		return nil, fmt.Errorf("header %v: %w", rows[headerIdx], err)
	}

	var out []warn.Notice
	for _, row := range rows[headerIdx+1:] {
		// EDD marks footnoted companies with asterisks
		company := strings.TrimSpace(strings.ReplaceAll(resolver.Cell(row, cols.Company), "*", ""))
		if resolver.SkipRow(company) {
			continue
		}
		noticeDate := warn.NormalizeDate(resolver.Cell(row, cols.Notice))
		if noticeDate == "" {
			// report banners and summary rows land here
			continue
		}
		n := warn.Notice{
			Company:       company,
			CleanName:     warn.CleanName(company, env.Aliases),
			NoticeDate:    noticeDate,
			EffectiveDate: warn.NormalizeDate(resolver.Cell(row, cols.Effective)),
			EmployeeCount: warn.NormalizeCount(resolver.Cell(row, cols.Count)),
			City:          resolver.Cell(row, cols.City),
			State:         c.State(),
			SourceURL:     c.URL,
		}
		n.HashID = n.Identity()
		out = append(out, n)
	}
	return out, nil
}
