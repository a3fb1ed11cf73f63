// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Preprint holds one normalized feed entry accepted for the report.
type Preprint struct {
	// Title is the preprint title, trimmed of surrounding whitespace.
	Title string `json:"title" yaml:"title"`

	// Feed is the joined category/subject label the fetch was issued for
	// (e.g. "cs.AI+cs.LG" or "bioinformatics+biophysics").
	Feed string `json:"feed" yaml:"feed"`

	// Authors lists the authors as a single comma-separated string.
	Authors string `json:"authors" yaml:"authors"`

	// Date is the publication date at midnight UTC. No time of day is kept.
	Date time.Time `json:"date" yaml:"date"`

	// Abstract is the entry summary text.
	Abstract string `json:"abstract" yaml:"abstract"`

	// URL is the canonical link to the preprint page.
	URL string `json:"url" yaml:"url"`
}
