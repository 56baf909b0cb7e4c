package synofoto

import (
	"strconv"

	"github.com/synotag/synotag/internal/synotag/errors"
)

// Tag represents a general tag in the Synology Photos library
//
//nolint:revive // Field names match API responses
type Tag struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ItemCount int    `json:"item_count"`
}

// tagListData is the payload of a SYNO.Foto.Browse.GeneralTag list call
type tagListData struct {
	List []Tag `json:"list"`
}

// ListTags retrieves all general tags defined in the library.
func (c *Client) ListTags() ([]Tag, error) {
	var data tagListData
	err := c.get("list tags", entryEndpoint, map[string]string{
		"api":     "SYNO.Foto.Browse.GeneralTag",
		"version": "1",
		"method":  "list",
		"_sid":    c.Sid,
		"offset":  strconv.Itoa(listOffset),
		"limit":   strconv.Itoa(listLimit),
	}, &data)
	if err != nil {
		return nil, err
	}
	return data.List, nil
}

// GetTagByName resolves a tag by its exact name. Returns ErrTagNotFound
// when no tag matches.
func (c *Client) GetTagByName(name string) (*Tag, error) {
	tags, err := c.ListTags()
	if err != nil {
		return nil, err
	}
	for i := range tags {
		if tags[i].Name == name {
			return &tags[i], nil
		}
	}
	return nil, errors.Wrapf(errors.ErrTagNotFound, "tag %q", name)
}
