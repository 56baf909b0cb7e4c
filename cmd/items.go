package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synotag/synotag/internal/log"
	"github.com/synotag/synotag/internal/synotag"
	"github.com/synotag/synotag/internal/synotag/synofoto"
)

var itemsRecursive bool

var itemsCmd = &cobra.Command{
	Use:   "items <folder-id>",
	Short: "List photos and videos in a folder",
	Long: `List the items of a folder, including each item's tags.
With --recursive the whole folder tree is walked.`,
	Example: `  # List items in folder 3048
  synotag items 3048

  # List items in folder 3048 and all its subfolders
  synotag items 3048 --recursive`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		folderID, err := parseFolderID(args[0])
		if err != nil {
			log.Fatal(err)
		}

		st := synotag.MustInit()

		var items []synofoto.Item
		if itemsRecursive {
			items, err = st.API.ListItemsRecursive(folderID)
		} else {
			items, err = st.API.ListItems(folderID)
		}
		if err != nil {
			log.Fatal(err)
		}

		log.Info("Found %d items", len(items))
		for _, item := range items {
			fmt.Printf("%d\t%s\t%s\n", item.ID, item.Type, item.Filename)
		}
	},
}

func init() {
	rootCmd.AddCommand(itemsCmd)

	itemsCmd.Flags().BoolVarP(&itemsRecursive, "recursive", "r", false, "Include items from all subfolders")
}
