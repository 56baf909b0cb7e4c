// Package cmd provides command-line interface commands for synotag
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/synotag/synotag/internal/log"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "synotag",
	Short: "CLI for Synology Photos batch tagging",
	Long: `synotag - Command-line interface for the Synology Photos API

A tool for browsing a Synology Photos library and applying team tags
to photos in bulk.

Features:
  • Batch tagging of team folders from a YAML mapping
  • Folder, item and tag listing
  • API and tag catalog dumps to JSON

Configuration is read from the environment:
  SYNOLOGY_PHOTO_URL       Base URL of the Synology Photos installation
  SYNOLOGY_PHOTO_USERNAME  Account username
  SYNOLOGY_PHOTO_PASSWORD  Account password`,
	Example: `  # Apply team tags from teams.yaml
  synotag apply

  # List root folders
  synotag folders

  # List items in a folder tree
  synotag items 3048 --recursive

  # Dump the tag catalog
  synotag dump tags`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
}
