package synofoto

import "strconv"

// Folder represents a folder in the Synology Photos library
//
//nolint:revive // Field names match API responses
type Folder struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Parent      int    `json:"parent"`
	OwnerUserID int    `json:"owner_user_id"`
	Shared      bool   `json:"shared"`
}

// folderListData is the payload of a SYNO.Foto.Browse.Folder list call
type folderListData struct {
	List []Folder `json:"list"`
}

// ListFolders retrieves the folders directly under parentID. A parentID
// of zero or less lists the root folders.
func (c *Client) ListFolders(parentID int) ([]Folder, error) {
	params := map[string]string{
		"api":     "SYNO.Foto.Browse.Folder",
		"version": "2",
		"method":  "list",
		"_sid":    c.Sid,
		"offset":  strconv.Itoa(listOffset),
		"limit":   strconv.Itoa(listLimit),
	}
	if parentID > 0 {
		params["id"] = strconv.Itoa(parentID)
	}

	var data folderListData
	if err := c.get("list folders", entryEndpoint, params, &data); err != nil {
		return nil, err
	}
	return data.List, nil
}
