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

// biorxivFeedBase is the bioRxiv subject collection feed endpoint (an RDF
// document). Declared as a var so tests can substitute an httptest server.
var biorxivFeedBase = "http://connect.biorxiv.org/biorxiv_xml.php?subject="

// BiorxivSource fetches the bioRxiv subject collection feed. Multiple
// subjects are queried in one request by joining them with "+".
type BiorxivSource struct {
	Client *http.Client
	Log    logrus.FieldLogger
}

// Name returns the source identifier.
func (s *BiorxivSource) Name() string { return "biorxiv" }

// Fetch retrieves the feed for the given subjects and returns the entries
// published on target. An empty subject list yields an empty result
// without a network call.
func (s *BiorxivSource) Fetch(ctx context.Context, ids []string, target time.Time, cfg types.FeedConfig) ([]types.Preprint, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	label := strings.Join(ids, "+")
	url := biorxivFeedBase + label
	s.Log.WithField("url", url).Info("fetching bioRxiv feed")

	f, err := fetchFeed(ctx, s.Client, url, cfg)
	if err != nil {
		return nil, err
	}
	return collectEntries(f, label, target, KindBiorxiv)
}
