package synofoto

import "github.com/synotag/synotag/internal/synotag/errors"

// loginData carries the session identifier returned by the login endpoint
type loginData struct {
	Sid string `json:"sid"`
}

// Login authenticates against SYNO.API.Auth and stores the session
// identifier for subsequent calls.
func (c *Client) Login() error {
	if c.Creds == nil {
		return errors.ErrInvalidCredentials
	}

	var data loginData
	err := c.get("login", authEndpoint, map[string]string{
		"api":     "SYNO.API.Auth",
		"version": "7",
		"method":  "login",
		"account": c.Creds.Username,
		"passwd":  c.Creds.Password,
	}, &data)
	if err != nil {
		return errors.Wrap(err, "authentication failed")
	}

	c.Sid = data.Sid
	return nil
}

// Logout ends the current session. The session id is cleared even when
// the vendor call fails.
func (c *Client) Logout() error {
	if c.Sid == "" {
		return nil
	}

	err := c.get("logout", authEndpoint, map[string]string{
		"api":     "SYNO.API.Auth",
		"version": "7",
		"method":  "logout",
		"_sid":    c.Sid,
	}, nil)
	c.Sid = ""
	return err
}
