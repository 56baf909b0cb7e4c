package synofoto

import "encoding/json"

// APIMethod describes one vendor API entry as reported by SYNO.API.Info.
type APIMethod struct {
	Path       string `json:"path"`
	MinVersion int    `json:"minVersion"`
	MaxVersion int    `json:"maxVersion"`
}

// APIInfo retrieves the vendor API catalog. It does not require a
// session, so it works on unauthenticated clients too.
func (c *Client) APIInfo() (map[string]APIMethod, error) {
	var info map[string]APIMethod
	err := c.get("api info", queryEndpoint, map[string]string{
		"api":     "SYNO.API.Info",
		"version": "1",
		"method":  "query",
	}, &info)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// APIInfoRaw retrieves the vendor API catalog without decoding it,
// preserving every field the vendor reports for dump output.
func (c *Client) APIInfoRaw() (map[string]json.RawMessage, error) {
	var info map[string]json.RawMessage
	err := c.get("api info", queryEndpoint, map[string]string{
		"api":     "SYNO.API.Info",
		"version": "1",
		"method":  "query",
	}, &info)
	if err != nil {
		return nil, err
	}
	return info, nil
}
