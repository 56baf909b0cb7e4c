// Package tagger applies team tags to every item under each team's
// folder tree.
package tagger

import (
	"fmt"

	"github.com/synotag/synotag/internal/log"
	"github.com/synotag/synotag/internal/synotag/config"
	"github.com/synotag/synotag/internal/synotag/synofoto"
)

// Client is the slice of the API client the tagger needs.
type Client interface {
	ListItemsRecursive(folderID int) ([]synofoto.Item, error)
	GetTagByName(name string) (*synofoto.Tag, error)
	AddTags(itemIDs []int, tagIDs []int) error
}

// Result summarizes a batch run. Failed holds the names of teams whose
// API calls failed; those teams were skipped, not retried.
type Result struct {
	Processed int
	Tagged    int
	Failed    []string
}

// Apply walks the team mapping in sorted name order and applies each
// team's tag to all items under its folder. A failing team is logged
// and skipped; the batch keeps going.
func Apply(c Client, mapping *config.TeamMapping) *Result {
	res := &Result{}
	for _, name := range mapping.Names() {
		tagged, err := processTeam(c, name, mapping.Teams[name])
		if err != nil {
			log.Error("Error processing team %s: %v", name, err)
			res.Failed = append(res.Failed, name)
			continue
		}
		res.Processed++
		res.Tagged += tagged
	}
	return res
}

// processTeam tags every item in the team's folder tree with the tag
// matching the team name. Returns the number of items tagged.
func processTeam(c Client, name string, folderID int) (int, error) {
	log.Info("Processing team %s...", name)

	items, err := c.ListItemsRecursive(folderID)
	if err != nil {
		return 0, fmt.Errorf("list items for folder %d: %w", folderID, err)
	}
	if len(items) == 0 {
		log.InfoH2("No items found for team %s, skipping", name)
		return 0, nil
	}

	tag, err := c.GetTagByName(name)
	if err != nil {
		return 0, err
	}

	itemIDs := make([]int, len(items))
	for i, item := range items {
		itemIDs[i] = item.ID
	}

	if err := c.AddTags(itemIDs, []int{tag.ID}); err != nil {
		return 0, err
	}

	log.InfoH2("Tagged %d items for team %s", len(itemIDs), name)
	return len(itemIDs), nil
}
