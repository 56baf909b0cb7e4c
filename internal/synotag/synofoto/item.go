package synofoto

import (
	"encoding/json"
	"strconv"
)

// Item represents a photo or video in the Synology Photos library
//
//nolint:revive // Field names match API responses
type Item struct {
	ID         int             `json:"id"`
	Filename   string          `json:"filename"`
	Filesize   int64           `json:"filesize"`
	FolderID   int             `json:"folder_id"`
	Time       int64           `json:"time"`
	Type       string          `json:"type"`
	Additional *ItemAdditional `json:"additional,omitempty"`
}

// ItemAdditional holds the optional per-item data requested via the
// additional query parameter.
type ItemAdditional struct {
	Tags []Tag `json:"tag"`
}

// itemListData is the payload of a SYNO.Foto.Browse.Item list call
type itemListData struct {
	List []Item `json:"list"`
}

// ListItems retrieves the photos and videos directly inside folderID,
// including each item's tags.
func (c *Client) ListItems(folderID int) ([]Item, error) {
	params := map[string]string{
		"api":        "SYNO.Foto.Browse.Item",
		"version":    "4",
		"method":     "list",
		"_sid":       c.Sid,
		"offset":     strconv.Itoa(listOffset),
		"limit":      strconv.Itoa(listLimit),
		"additional": `["tag"]`,
	}
	if folderID > 0 {
		params["folder_id"] = strconv.Itoa(folderID)
	}

	var data itemListData
	if err := c.get("list items", entryEndpoint, params, &data); err != nil {
		return nil, err
	}
	return data.List, nil
}

// ListItemsRecursive retrieves the items of folderID and of every
// descendant folder, depth first, in traversal order.
func (c *Client) ListItemsRecursive(folderID int) ([]Item, error) {
	items, err := c.ListItems(folderID)
	if err != nil {
		return nil, err
	}

	folders, err := c.ListFolders(folderID)
	if err != nil {
		return nil, err
	}
	for _, folder := range folders {
		children, err := c.ListItemsRecursive(folder.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, children...)
	}

	return items, nil
}

// AddTags applies every tag in tagIDs to every item in itemIDs. The
// vendor takes both lists as JSON-encoded query parameters.
func (c *Client) AddTags(itemIDs []int, tagIDs []int) error {
	ids, err := json.Marshal(itemIDs)
	if err != nil {
		return err
	}
	tags, err := json.Marshal(tagIDs)
	if err != nil {
		return err
	}

	return c.get("add tags", entryEndpoint, map[string]string{
		"api":     "SYNO.Foto.Browse.Item",
		"version": "1",
		"method":  "add_tag",
		"_sid":    c.Sid,
		"id":      string(ids),
		"tag":     string(tags),
	}, nil)
}
