// Package synotag wires configuration, the API client and the batch
// tagger behind a small facade used by the CLI commands.
package synotag

import (
	"github.com/synotag/synotag/internal/log"
	"github.com/synotag/synotag/internal/synotag/config"
	"github.com/synotag/synotag/internal/synotag/synofoto"
	"github.com/synotag/synotag/internal/synotag/tagger"
	"github.com/synotag/synotag/internal/synotag/utils"
)

// Dump artifact file names, matching the original script outputs.
const (
	APIInfoFile = "api_info.json"
	TagsFile    = "tags_info.json"
)

// SynoTag bundles the environment configuration with an API client.
type SynoTag struct {
	Config *config.Config
	API    *synofoto.Client
}

// Init loads the environment configuration and logs in.
func Init() (*SynoTag, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	api, err := synofoto.Init(cfg.URL, cfg.Creds())
	if err != nil {
		return nil, err
	}
	return &SynoTag{Config: cfg, API: api}, nil
}

// InitNoAuth loads the environment configuration without logging in,
// for operations that do not need a session.
func InitNoAuth() (*SynoTag, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	api, err := synofoto.New(cfg.URL)
	if err != nil {
		return nil, err
	}
	return &SynoTag{Config: cfg, API: api}, nil
}

// MustInit is Init for commands where any failure is fatal.
func MustInit() *SynoTag {
	st, err := Init()
	if err != nil {
		log.Fatal(err)
	}
	return st
}

// DumpAPIInfo writes the vendor API catalog to api_info.json inside
// outputDir and returns the written path.
func (st *SynoTag) DumpAPIInfo(outputDir string) (string, error) {
	info, err := st.API.APIInfoRaw()
	if err != nil {
		return "", err
	}
	return utils.WriteJSONFile(outputDir, APIInfoFile, info)
}

// DumpTags writes the tag list to tags_info.json inside outputDir and
// returns the written path.
func (st *SynoTag) DumpTags(outputDir string) (string, error) {
	tags, err := st.API.ListTags()
	if err != nil {
		return "", err
	}
	return utils.WriteJSONFile(outputDir, TagsFile, tags)
}

// ApplyTeamTags runs the batch tagger over the mapping file. Per-team
// failures are reflected in the result, not returned as an error.
func (st *SynoTag) ApplyTeamTags(teamsFile string) (*tagger.Result, error) {
	mapping, err := config.LoadTeamMapping(teamsFile)
	if err != nil {
		return nil, err
	}
	log.Info("Processing %d teams...", len(mapping.Teams))
	return tagger.Apply(st.API, mapping), nil
}
