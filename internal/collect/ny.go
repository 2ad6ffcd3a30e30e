package collect

import (
	"context"
	"fmt"
	"strings"

	"github.com/LayoffWatch/LW-Pipeline/internal/resolver"
	"github.com/LayoffWatch/LW-Pipeline/internal/warn"
)

// NY ingests the yearly listing page, one PDF per notice. PDFs already in
// the store are skipped by source URL before any download happens; that lazy
// check is what keeps repeat runs cheap.
type NY struct {
	Fetcher *Fetcher
	BaseURL string
}

func (c *NY) State() string { return "NY" }

func (c *NY) Collect(ctx context.Context, env Env) ([]warn.Notice, error) {
	listing := fmt.Sprintf("%s/%d-warn-notices", c.BaseURL, env.Year)
	page, err := c.Fetcher.Get(ctx, listing)
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}

	var out []warn.Notice
	for _, l := range Links(page) {
		if !strings.Contains(l.Href, "/warn-") {
			continue
		}
		url := l.Href
		if !strings.HasPrefix(url, "http") {
			url = c.BaseURL + url
		}
		url = strings.TrimSpace(url)
		if env.SeenURLs[url] {
			continue
		}

		blob, err := c.Fetcher.Get(ctx, url)
		if err != nil {
			// one bad document must not sink the rest of the listing
			env.Log.Warnw("notice fetch failed", "url", url, "error", err)
			continue
		}
		fields := resolver.ExtractFields(extractFirstPageText(blob))

		company := strings.TrimSpace(fields.Company)
		if company == "" {
			company = strings.TrimSpace(l.Text)
		}
		if company == "" {
			continue
		}

		n := warn.Notice{
			Company:       company,
			CleanName:     warn.CleanName(company, env.Aliases),
			NoticeDate:    warn.NormalizeDate(fields.NoticeDate),
			EffectiveDate: warn.NormalizeDate(fields.Effective),
			EmployeeCount: warn.NormalizeCount(fields.Affected),
			City:          resolver.CityFromAddress(fields.Address, c.State()),
			State:         c.State(),
			SourceURL:     url,
		}
		n.HashID = n.Identity()
		out = append(out, n)
	}
	return out, nil
}
