package cmd

import (
	"github.com/spf13/cobra"

	"github.com/synotag/synotag/internal/log"
	"github.com/synotag/synotag/internal/synotag"
)

var dumpTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Save the tag catalog to tags_info.json",
	Long: `Retrieve every general tag defined in the photo library and save
the list as JSON. Useful for looking up tag IDs and as a backup of the
tag catalog.`,
	Example: `  # Save the tag catalog
  synotag dump tags`,
	Run: func(_ *cobra.Command, _ []string) {
		st := synotag.MustInit()

		path, err := st.DumpTags(dumpOutputDir)
		if err != nil {
			log.Fatal(err)
		}
		log.Info("Tags info saved to %s", path)
	},
}

func init() {
	dumpCmd.AddCommand(dumpTagsCmd)
}
