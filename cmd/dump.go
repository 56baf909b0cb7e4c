package cmd

import (
	"github.com/spf13/cobra"
)

var dumpOutputDir string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump vendor API data to JSON files",
	Long: `Dump Synology Photos API data to JSON files for offline use:
  - The API catalog (available endpoints and versions)
  - The tag catalog (tag names, IDs and item counts)`,
	Example: `  # Save the API catalog to output/api_info.json
  synotag dump api

  # Save the tag catalog to a custom directory
  synotag dump tags --output /tmp/syno`,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.PersistentFlags().StringVarP(&dumpOutputDir, "output", "o", "output", "Directory for dump files")
}
