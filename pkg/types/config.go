// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "preprint-digest/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FeedConfig holds settings for the feed fetch stage.
type FeedConfig struct {
	HTTPConfig `yaml:",inline"`
}

// ReportConfig holds settings for the report output stage.
type ReportConfig struct {
	// OutputPath is the file the rendered HTML report is written to.
	// The file is overwritten on each run.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Subtitle is the report heading subtitle. When empty, the joined
	// source lists are used.
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
}
