package reconcile

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Fetcher downloads a batch of remote text resources concurrently.
// The number of simultaneous in-flight requests is capped so a large
// manifest cannot exhaust outbound connections.
type Fetcher struct {
	logger *slog.Logger
	httpc  *http.Client
	sem    chan struct{} // shared across calls, caps total in-flight requests
}

func NewFetcher(maxInFlight int) *Fetcher {
	if maxInFlight < 1 {
		maxInFlight = 1
	}
	return &Fetcher{
		logger: slog.Default().With("module", "reconcile"),
		httpc:  &http.Client{Timeout: 30 * time.Second},
		sem:    make(chan struct{}, maxInFlight),
	}
}

// FetchAll fetches every url concurrently and waits for all to settle.
// Result order matches input order. A failed or empty-url fetch yields
// nil at its position and is logged; it never aborts the batch.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) []*string {
	results := make([]*string, len(urls))

	g, ctx := errgroup.WithContext(ctx)

	for i, url := range urls {
		i, url := i, url
		if url == "" {
			continue
		}
		g.Go(func() error {
			select {
			case f.sem <- struct{}{}:
			case <-ctx.Done():
				return nil
			}
			defer func() { <-f.sem }()

			body, err := f.fetchText(ctx, url)
			if err != nil {
				f.logger.Warn("resource fetch failed", "url", url, "error", err)
				return nil
			}
			results[i] = &body
			return nil
		})
	}

	// workers only ever return nil; Wait is for settlement
	_ = g.Wait()
	return results
}

func (f *Fetcher) fetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
