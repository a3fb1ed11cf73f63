// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the preprint-digest CLI.
package main

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// log is the process-wide logger, configured in initLogger and injected
// into the pipeline stages.
var log = logrus.New()

// rootCmd is the base command for the preprint-digest CLI.
var rootCmd = &cobra.Command{
	Use:   "preprint-digest",
	Short: "Build a daily HTML digest of new preprints",
	Long: `preprint-digest fetches preprint listings from the arXiv category feed and
the bioRxiv subject feed, keeps the entries published on a target date, and
renders them into a single static HTML report.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(cmd)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./preprint-digest.yaml or ~/.config/preprint-digest/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("preprint-digest")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "preprint-digest"))
		}
	}

	viper.SetEnvPrefix("PREPRINT_DIGEST")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	}
}

// initLogger configures the process-wide logger with timestamped,
// leveled output on stdout.
func initLogger(cmd *cobra.Command) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose || os.Getenv("DEBUG") == "true" {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
