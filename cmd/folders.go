package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synotag/synotag/internal/log"
	"github.com/synotag/synotag/internal/synotag"
)

var foldersCmd = &cobra.Command{
	Use:   "folders [parent-id]",
	Short: "List folders in the photo library",
	Long: `List the folders directly under the given parent folder.
Without an argument the root folders are listed.`,
	Example: `  # List root folders
  synotag folders

  # List subfolders of folder 3048
  synotag folders 3048`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		parentID := 0
		if len(args) > 0 {
			id, err := parseFolderID(args[0])
			if err != nil {
				log.Fatal(err)
			}
			parentID = id
		}

		st := synotag.MustInit()

		folders, err := st.API.ListFolders(parentID)
		if err != nil {
			log.Fatal(err)
		}

		log.Info("Found %d folders", len(folders))
		for _, folder := range folders {
			fmt.Printf("%d\t%s\n", folder.ID, folder.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(foldersCmd)
}
