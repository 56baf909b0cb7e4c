package cmd

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/synotag/synotag/internal/log"
	"github.com/synotag/synotag/internal/synotag"
	"github.com/synotag/synotag/internal/synotag/config"
)

var applyYes bool

var applyCmd = &cobra.Command{
	Use:   "apply [teams-file]",
	Short: "Apply team tags to every photo in each team's folder",
	Long: `Apply team tags in bulk from a team mapping file.

The mapping file associates team names with their folder IDs:

  teams:
    U20F: 3048
    U18M-1: 3037

For every team the command lists the folder tree recursively, resolves
the tag matching the team name and applies it to all items. A team whose
API calls fail is logged and skipped; the remaining teams are still
processed.`,
	Example: `  # Apply tags from the default teams.yaml
  synotag apply

  # Apply tags from a specific mapping file without confirmation
  synotag apply club-teams.yaml --yes`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		teamsFile := config.DefaultTeamsFile
		if len(args) > 0 {
			teamsFile = args[0]
		}

		st := synotag.MustInit()

		if !applyYes {
			confirmed := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("Apply team tags from %s?", teamsFile),
			}
			if err := survey.AskOne(prompt, &confirmed); err != nil {
				log.Fatal(err)
			}
			if !confirmed {
				log.Info("Aborted")
				return
			}
		}

		res, err := st.ApplyTeamTags(teamsFile)
		if err != nil {
			log.Fatal(err)
		}

		if len(res.Failed) > 0 {
			log.Error("Failed teams: %s", strings.Join(res.Failed, ", "))
		}
		log.Info("Tagged %d items across %d teams (%d failed)", res.Tagged, res.Processed, len(res.Failed))
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().BoolVarP(&applyYes, "yes", "y", false, "Skip the confirmation prompt")
}
