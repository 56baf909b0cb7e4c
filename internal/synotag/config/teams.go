package config

import (
	"sort"

	"github.com/synotag/synotag/internal/synotag/errors"
	"github.com/synotag/synotag/internal/synotag/utils"
)

// DefaultTeamsFile is the team mapping file looked up when no path is
// given on the command line.
const DefaultTeamsFile = "teams.yaml"

// TeamMapping associates each team name with the vendor folder ID
// holding that team's photos. The team name doubles as the tag name
// applied to the folder's items.
type TeamMapping struct {
	Teams map[string]int `yaml:"teams"`
}

// LoadTeamMapping parses the team mapping YAML file.
func LoadTeamMapping(path string) (*TeamMapping, error) {
	var mapping TeamMapping
	if err := utils.ParseYamlFromFile(path, &mapping); err != nil {
		return nil, err
	}
	if len(mapping.Teams) == 0 {
		return nil, errors.Wrapf(errors.ErrNoTeamsDefined, "%s", path)
	}
	return &mapping, nil
}

// Names returns the team names in sorted order so batch runs are
// reproducible.
func (m *TeamMapping) Names() []string {
	names := make([]string, 0, len(m.Teams))
	for name := range m.Teams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
