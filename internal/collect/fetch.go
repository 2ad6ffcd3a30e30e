// Package collect implements the per-state collectors: everything between a
// state agency's published feed and a batch of canonical notices. The core
// merge/aggregate logic never touches the network; it sees only what these
// collectors hand back.
package collect

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Some agency sites refuse non-browser clients outright.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Fetcher is the polite HTTP client shared by the collectors: browser
// User-Agent, request pacing, and a hard per-request timeout.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 90 * time.Second},
		// NY serves one PDF per notice; pacing keeps us off their radar.
		limiter: rate.NewLimiter(rate.Every(700*time.Millisecond), 1),
	}
}

// Get downloads one URL. Transport failures surface as errors here; the
// ingestion entrypoint converts them into "zero rows collected".
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
