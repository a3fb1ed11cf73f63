// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/preprint-digest/pkg/types"
)

// arxivFeedBase is the arXiv category Atom feed endpoint. Declared as a
// var so tests can substitute an httptest server.
var arxivFeedBase = "https://rss.arxiv.org/atom/"

// ArxivSource fetches the arXiv category feed. Multiple categories are
// queried in one request by joining them with "+".
type ArxivSource struct {
	Client *http.Client
	Log    logrus.FieldLogger
}

// Name returns the source identifier.
func (s *ArxivSource) Name() string { return "arxiv" }

// Fetch retrieves the feed for the given categories and returns the
// entries published on target. An empty category list yields an empty
// result without a network call.
func (s *ArxivSource) Fetch(ctx context.Context, ids []string, target time.Time, cfg types.FeedConfig) ([]types.Preprint, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	label := strings.Join(ids, "+")
	url := arxivFeedBase + label
	s.Log.WithField("url", url).Info("fetching arXiv feed")

	f, err := fetchFeed(ctx, s.Client, url, cfg)
	if err != nil {
		return nil, err
	}
	return collectEntries(f, label, target, KindArxiv)
}
