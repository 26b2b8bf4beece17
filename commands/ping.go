package commands

import (
	"strconv"
	"time"

	"HelperBot/router"
)

// PingText reports how long a message sent at sent took to reach the bot at now.
func PingText(sent, now time.Time) string {
	return "Pong, this message took " + strconv.FormatInt(now.Sub(sent).Milliseconds(), 10) + "ms"
}

// Ping tests the bot's latency.
func Ping() *router.Command {
	return &router.Command{
		Name:        "ping",
		Description: "Tests the bots latency",
		Function: func(ctx *router.Context) error {
			_, err := ctx.Reply(PingText(ctx.Message.ID.Date(), time.Now().UTC()))
			return err
		},
	}
}

// ActiveText is the answer to the active command.
const ActiveText = "I am here and listening for your commands"

// Active checks if the bot is listening.
func Active() *router.Command {
	return &router.Command{
		Name:        "active",
		Description: "Check if the bot is active",
		Function: func(ctx *router.Context) error {
			_, err := ctx.Reply(ActiveText)
			return err
		},
	}
}
