package collect

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/LayoffWatch/LW-Pipeline/internal/config"
	"github.com/LayoffWatch/LW-Pipeline/internal/warn"
)

// Collector turns one state's published feed into canonical notices. A
// transport failure is an error; the caller treats it as zero rows collected
// and never lets it reach the merge logic.
type Collector interface {
	State() string
	Collect(ctx context.Context, env Env) ([]warn.Notice, error)
}

// Env carries the per-run inputs every collector shares.
type Env struct {
	Aliases map[string]string
	// SeenURLs lets slow per-document sources skip notices already stored.
	SeenURLs map[string]bool
	Year     int
	Log      *zap.SugaredLogger
}

// New wires the collector for a state code to its configured source.
func New(state string, fetcher *Fetcher, src config.Sources) (Collector, error) {
	switch strings.ToLower(state) {
	case "ca":
		return &CA{Fetcher: fetcher, URL: src.CAWorkbookURL}, nil
	case "fl":
		return &FL{Fetcher: fetcher, ListURL: src.FLListURL}, nil
	case "tx":
		return &TX{Fetcher: fetcher, PageURL: src.TXDataPageURL, BaseURL: src.TXBaseURL}, nil
	case "ny":
		return &NY{Fetcher: fetcher, BaseURL: src.NYBaseURL}, nil
	}
	return nil, fmt.Errorf("unknown source state %q", state)
}

var titleCaser = cases.Title(language.AmericanEnglish)

// titleCase normalizes SHOUTING city cells ("FORT LAUDERDALE") to display
// form.
func titleCase(s string) string {
	return titleCaser.String(strings.ToLower(s))
}
