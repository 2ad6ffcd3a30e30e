package collect

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/LayoffWatch/LW-Pipeline/internal/resolver"
	"github.com/LayoffWatch/LW-Pipeline/internal/warn"
)

// TX ingests whichever spreadsheet the TWC data page currently links: the
// page itself is stable, the sheet URL and format change year to year.
type TX struct {
	Fetcher *Fetcher
	PageURL string
	BaseURL string // prefix for root-relative sheet links
}

func (c *TX) State() string { return "TX" }

var sheetExt = regexp.MustCompile(`(?i)\.(xlsx|xls|csv)$`)

func (c *TX) Collect(ctx context.Context, env Env) ([]warn.Notice, error) {
	page, err := c.Fetcher.Get(ctx, c.PageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch data page: %w", err)
	}
	dataURL := c.pickSheetLink(Links(page), env.Year)
	if dataURL == "" {
		return nil, errors.New("no spreadsheet link on data page")
	}

	blob, err := c.Fetcher.Get(ctx, dataURL)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", dataURL, err)
	}

	var rows [][]string
	if strings.HasSuffix(strings.ToLower(dataURL), ".csv") {
		rows = readCSVCells(blob)
	} else {
		rows, err = firstSheetRows(blob)
		if err != nil {
			return nil, fmt.Errorf("open workbook %s: %w", dataURL, err)
		}
	}
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
			SourceURL:     dataURL,
		}
		n.HashID = n.Identity()
		out = append(out, n)
	}
	return out, nil
}

// pickSheetLink prefers a link mentioning the current year, then the first
// spreadsheet link on the page.
func (c *TX) pickSheetLink(links []Link, year int) string {
	var candidates []string
	for _, l := range links {
		if !sheetExt.MatchString(l.Href) {
			continue
		}
		href := l.Href
		if strings.HasPrefix(href, "/") {
			href = c.BaseURL + href
		}
		candidates = append(candidates, href)
	}
	ys := strconv.Itoa(year)
	for _, u := range candidates {
		if strings.Contains(u, ys) {
			return u
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return ""
}

func readCSVCells(blob []byte) [][]string {
	r := csv.NewReader(bytes.NewReader(blob))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil
	}
	return records
}

func firstSheetRows(blob []byte) ([][]string, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		return nil, err
	}
	defer wb.Close()
	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return wb.GetRows(sheets[0])
}
