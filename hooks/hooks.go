// Package hooks holds the functions the router runs around every command.
package hooks

import (
	"fmt"
	"math"

	"HelperBot/router"

	"github.com/hako/durafmt"
)

// Before logs the invocation. It never stops a command.
func Before(ctx *router.Context) bool {
	ctx.Log.Infof("User '%s' issued command '%s'", ctx.Message.Author.Username, ctx.Command.Name)
	return true
}

// After logs how the command went.
func After(ctx *router.Context, err error) {
	if err != nil {
		ctx.Log.WithError(err).Errorf("Error processing command '%s'", ctx.Command.Name)
		return
	}
	ctx.Log.Infof("Successfully processed command '%s'", ctx.Command.Name)
}

// DispatchError tells a throttled user when to try again, once per episode.
// Every other dispatch error is only logged.
func DispatchError(ctx *router.Context, derr *router.DispatchError) {
	if derr.Kind != router.Ratelimited {
		ctx.Log.WithField("reason", derr.Kind.String()).Info("Command refused")
		return
	}

	log := ctx.Log.WithField("retry_after", durafmt.Parse(derr.RetryAfter).String())
	if !derr.IsFirstTry {
		log.Debug("Command throttled again")
		return
	}
	log.Info("Command throttled")
	if _, err := ctx.Reply(RetryNotice(derr)); err != nil {
		log.WithError(err).Warn("Failed to send retry notice")
	}
}

// RetryNotice is the text sent to a throttled user.
func RetryNotice(derr *router.DispatchError) string {
	return fmt.Sprintf("Try again in %d seconds", int64(math.Ceil(derr.RetryAfter.Seconds())))
}
