package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synotag/synotag/internal/log"
	"github.com/synotag/synotag/internal/synotag"
)

var tagsCmd = &cobra.Command{
	Use:   "tags [name]",
	Short: "List tags or look up a tag by name",
	Long: `List every general tag in the photo library, or look up a single
tag by its exact name to get its ID and item count.`,
	Example: `  # List all tags
  synotag tags

  # Look up the tag for team U20F
  synotag tags U20F`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		st := synotag.MustInit()

		if len(args) > 0 {
			tag, err := st.API.GetTagByName(args[0])
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%d\t%s\t%d items\n", tag.ID, tag.Name, tag.ItemCount)
			return
		}

		tags, err := st.API.ListTags()
		if err != nil {
			log.Fatal(err)
		}

		log.Info("Found %d tags", len(tags))
		for _, tag := range tags {
			fmt.Printf("%d\t%s\t%d items\n", tag.ID, tag.Name, tag.ItemCount)
		}
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
