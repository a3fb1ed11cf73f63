// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/preprint-digest/internal/feed"
	"github.com/pdiddy/preprint-digest/internal/report"
	"github.com/pdiddy/preprint-digest/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "preprint-digest/0.1"
	defaultOutput    = "report.html"
	defaultTimezone  = "America/New_York"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Fetch preprints for a date and write the HTML report",
	Long: `Report fetches the configured arXiv categories and bioRxiv subjects, keeps
the entries published on the target date (by default: today in US Eastern),
aggregates them into one date-sorted, deduplicated list, and writes a
self-contained HTML report.

Any fetch, render, or write failure aborts the run with a non-zero exit;
no partial report is written.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().String("date", "", "target publication date (YYYY-MM-DD, default: today in US Eastern)")
	reportCmd.Flags().StringSlice("categories", nil, "arXiv categories to fetch (default: built-in list)")
	reportCmd.Flags().StringSlice("subjects", nil, "bioRxiv subjects to fetch (default: built-in list)")
	reportCmd.Flags().String("sources", "", "YAML sources file overriding --categories and --subjects")
	reportCmd.Flags().String("subtitle", "", "report heading subtitle (default: joined source lists)")
	reportCmd.Flags().String("output", "", "report output path (default report.html)")
	reportCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	reportCmd.Flags().String("user-agent", "", "User-Agent header for feed requests")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	dateStr, _ := cmd.Flags().GetString("date")
	target, err := resolveTargetDate(dateStr)
	if err != nil {
		return err
	}
	log.WithField("date", target.Format("2006-01-02")).Info("building preprint report")

	sources, err := resolveSources(cmd)
	if err != nil {
		return err
	}

	subtitle, _ := cmd.Flags().GetString("subtitle")
	if subtitle == "" {
		subtitle = sources.ResolvedSubtitle()
	}

	output := stringSetting(cmd, "output", "output", defaultOutput)
	ua := stringSetting(cmd, "user-agent", "user_agent", defaultUserAgent)

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}

	cfg := types.FeedConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: ua,
		},
	}
	client := &http.Client{Timeout: cfg.Timeout}

	reqs := []feed.Request{
		{Source: &feed.ArxivSource{Client: client, Log: log}, IDs: sources.ArxivCategories},
		{Source: &feed.BiorxivSource{Client: client, Log: log}, IDs: sources.BiorxivSubjects},
	}

	lists, err := feed.FetchAll(cmd.Context(), reqs, target, cfg)
	if err != nil {
		return err
	}

	records := report.Aggregate(log, lists...)

	html, err := report.Render(records, subtitle, report.ContentAbstract)
	if err != nil {
		return err
	}

	if err := report.WriteReport(output, html); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"path":  output,
		"count": len(records),
	}).Info("report written")
	return nil
}

// resolveSources determines the category and subject lists: a sources file
// wins over flags, flags win over the built-in defaults.
func resolveSources(cmd *cobra.Command) (feed.SourcesFile, error) {
	sourcesPath, _ := cmd.Flags().GetString("sources")
	if sourcesPath != "" {
		s, err := feed.ReadSourcesFile(sourcesPath)
		if err != nil {
			return feed.SourcesFile{}, err
		}
		return *s, nil
	}

	sources := feed.DefaultSources()
	if cmd.Flags().Changed("categories") {
		sources.ArxivCategories, _ = cmd.Flags().GetStringSlice("categories")
	} else if cats := viper.GetStringSlice("arxiv_categories"); len(cats) > 0 {
		sources.ArxivCategories = cats
	}
	if cmd.Flags().Changed("subjects") {
		sources.BiorxivSubjects, _ = cmd.Flags().GetStringSlice("subjects")
	} else if subs := viper.GetStringSlice("biorxiv_subjects"); len(subs) > 0 {
		sources.BiorxivSubjects = subs
	}
	return sources, nil
}

// resolveTargetDate parses an explicit YYYY-MM-DD date, or computes today
// in the US Eastern timezone when date is empty. The result is midnight
// UTC, matching the dates produced by the feed stage.
func resolveTargetDate(date string) (time.Time, error) {
	if date != "" {
		t, err := time.Parse("2006-01-02", date)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
		}
		return t, nil
	}

	loc, err := time.LoadLocation(defaultTimezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("loading timezone %s: %w", defaultTimezone, err)
	}
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
}

// stringSetting resolves a string option: explicit flag, then config file,
// then the built-in default.
func stringSetting(cmd *cobra.Command, flag, key, fallback string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}
