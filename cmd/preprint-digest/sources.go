// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/preprint-digest/internal/feed"
)

const defaultSourcesPath = "sources.yaml"

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage the feed sources file",
}

var sourcesInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter sources file with the built-in lists",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultSourcesPath
		if len(args) == 1 {
			path = args[0]
		}
		if err := feed.WriteSourcesFile(path, feed.DefaultSources()); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
		return nil
	},
}

var sourcesShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print the resolved sources file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultSourcesPath
		if len(args) == 1 {
			path = args[0]
		}
		s, err := feed.ReadSourcesFile(path)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshaling sources: %w", err)
		}
		os.Stdout.Write(data)
		return nil
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesInitCmd)
	sourcesCmd.AddCommand(sourcesShowCmd)
	rootCmd.AddCommand(sourcesCmd)
}
