// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report aggregates preprint records and renders the HTML report.
package report

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/preprint-digest/pkg/types"
)

// Aggregate concatenates the per-source record lists in call order, sorts
// the combined list by publication date ascending (stable, so same-date
// records keep their input order), and deduplicates by title. The first
// record seen for a title wins; later ones are dropped.
func Aggregate(log logrus.FieldLogger, lists ...[]types.Preprint) []types.Preprint {
	var all []types.Preprint
	for _, l := range lists {
		all = append(all, l...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.Before(all[j].Date)
	})

	seen := make(map[string]bool, len(all))
	deduped := make([]types.Preprint, 0, len(all))
	for _, r := range all {
		key := strings.TrimSpace(r.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, r)
	}

	log.WithField("count", len(deduped)).Info("aggregated preprints")
	return deduped
}
