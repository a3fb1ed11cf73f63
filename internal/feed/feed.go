// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed retrieves preprint listings from public syndication feeds
// and filters them to a single publication date.
package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/pdiddy/preprint-digest/pkg/types"
)

// Source fetches one feed endpoint. Each source (arXiv, bioRxiv)
// implements this interface.
type Source interface {
	Name() string
	Fetch(ctx context.Context, ids []string, target time.Time, cfg types.FeedConfig) ([]types.Preprint, error)
}

// FetchError reports a failed fetch from a named source.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s feed: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Request pairs a source with the identifiers to query it for.
type Request struct {
	Source Source
	IDs    []string
}

// FetchAll runs all requests concurrently and returns one record list per
// request, in request order. Results are collected into fixed slots, so the
// output does not depend on goroutine completion order. The first source
// failure, in request order, is returned as a *FetchError.
func FetchAll(ctx context.Context, reqs []Request, target time.Time, cfg types.FeedConfig) ([][]types.Preprint, error) {
	results := make([][]types.Preprint, len(reqs))
	errs := make([]error, len(reqs))

	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req Request) {
			defer wg.Done()
			records, err := req.Source.Fetch(ctx, req.IDs, target, cfg)
			if err != nil {
				errs[i] = &FetchError{Source: req.Source.Name(), Err: err}
				return
			}
			results[i] = records
		}(i, req)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// fetchFeed issues a GET request for url and parses the response body as a
// syndication feed (Atom, RSS 2.0, or RDF).
func fetchFeed(ctx context.Context, client *http.Client, url string, cfg types.FeedConfig) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned HTTP %d", resp.StatusCode)
	}

	f, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}
	return f, nil
}

// collectEntries filters feed items to those published on target and
// normalizes the kept ones into Preprint records. An entry whose timestamp
// is missing or unparseable fails the whole fetch; nothing is skipped
// silently.
func collectEntries(f *gofeed.Feed, label string, target time.Time, kind Kind) ([]types.Preprint, error) {
	var records []types.Preprint
	for _, item := range f.Items {
		date, err := parseEntryDate(entryTimestamp(item), kind)
		if err != nil {
			return nil, err
		}
		if !date.Equal(target) {
			continue
		}

		records = append(records, types.Preprint{
			Title:    strings.TrimSpace(item.Title),
			Feed:     label,
			Authors:  entryAuthors(item),
			Date:     date,
			Abstract: strings.TrimSpace(item.Description),
			URL:      item.Link,
		})
	}
	return records, nil
}

// entryTimestamp returns the raw updated timestamp of an entry, falling
// back to the published timestamp for dialects that carry only one.
func entryTimestamp(item *gofeed.Item) string {
	if item.Updated != "" {
		return item.Updated
	}
	return item.Published
}

// entryAuthors joins the entry's author names with commas. Some feed
// dialects expose a single author rather than a list.
func entryAuthors(item *gofeed.Item) string {
	if len(item.Authors) > 0 {
		names := make([]string, 0, len(item.Authors))
		for _, a := range item.Authors {
			names = append(names, strings.TrimSpace(a.Name))
		}
		return strings.Join(names, ", ")
	}
	if item.Author != nil {
		return strings.TrimSpace(item.Author.Name)
	}
	return ""
}
