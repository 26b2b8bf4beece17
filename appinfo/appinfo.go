// Package appinfo asks the Discord REST API who owns the bot and what its user ID is.
package appinfo

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/andersfylling/disgord"
	"github.com/jakemakesstuff/structuredhttp"
	"github.com/pkg/errors"
)

// Info is what the bot needs to know about itself at startup.
type Info struct {
	ApplicationID disgord.Snowflake
	BotID         disgord.Snowflake
	BotName       string
	Owners        []disgord.Snowflake
}

type application struct {
	ID    disgord.Snowflake `json:"id"`
	Owner *struct {
		ID disgord.Snowflake `json:"id"`
	} `json:"owner"`
	Team *struct {
		OwnerUserID disgord.Snowflake `json:"owner_user_id"`
	} `json:"team"`
}

type currentUser struct {
	ID       disgord.Snowflake `json:"id"`
	Username string            `json:"username"`
}

// Client talks to the Discord API with a bot token.
type Client struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Fetch gets the application owners and the bot user. Applications owned by a
// team are owned by the team owner.
func (c *Client) Fetch() (*Info, error) {
	var app application
	if err := c.get("/oauth2/applications/@me", &app); err != nil {
		return nil, errors.Wrap(err, "get application info")
	}
	var me currentUser
	if err := c.get("/users/@me", &me); err != nil {
		return nil, errors.Wrap(err, "get bot id")
	}

	info := &Info{ApplicationID: app.ID, BotID: me.ID, BotName: me.Username}
	switch {
	case app.Team != nil && app.Team.OwnerUserID != 0:
		info.Owners = []disgord.Snowflake{app.Team.OwnerUserID}
	case app.Owner != nil && app.Owner.ID != 0:
		info.Owners = []disgord.Snowflake{app.Owner.ID}
	default:
		return nil, errors.New("application has no owner")
	}
	return info, nil
}

func (c *Client) get(path string, v interface{}) error {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	resp, err := structuredhttp.GET(strings.TrimRight(c.BaseURL, "/")+path).
		Header("Authorization", "Bot "+c.Token).
		Timeout(timeout).
		Run()
	if err != nil {
		return err
	}
	if err = resp.RaiseForStatus(); err != nil {
		return err
	}
	b, err := resp.Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
