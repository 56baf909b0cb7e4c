package cmd

import (
	"github.com/spf13/cobra"

	"github.com/synotag/synotag/internal/log"
	"github.com/synotag/synotag/internal/synotag"
)

var dumpAPICmd = &cobra.Command{
	Use:   "api",
	Short: "Save the vendor API catalog to api_info.json",
	Long: `Retrieve the Synology API catalog and save it as JSON.

The catalog lists every API the installation exposes with its entry
point path and supported version range. Querying it does not require
authentication.`,
	Example: `  # Save the API catalog
  synotag dump api`,
	Run: func(_ *cobra.Command, _ []string) {
		st, err := synotag.InitNoAuth()
		if err != nil {
			log.Fatal(err)
		}

		path, err := st.DumpAPIInfo(dumpOutputDir)
		if err != nil {
			log.Fatal(err)
		}
		log.Info("API info saved to %s", path)
	},
}

func init() {
	dumpCmd.AddCommand(dumpAPICmd)
}
