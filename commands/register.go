// Package commands holds the chat commands of the bot and the list they are registered from.
package commands

import (
	"time"

	"HelperBot/categories"
	"HelperBot/router"
)

// Build registers every command in its group and returns the finished router.
func Build(cfg router.Config, version string, started time.Time) (*router.Router, error) {
	return router.NewBuilder(cfg).
		Group(categories.General(), Help()).
		Group(categories.Text(), Echo(), Say(), Whisper()).
		Group(categories.Test(), Active(), Ping()).
		Group(categories.Util(), Avatar(), DefaultAvatar(), Changelog(version), Code(), Count()).
		Group(categories.Debug(), Debug(version, started)).
		Build()
}
