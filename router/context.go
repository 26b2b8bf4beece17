package router

import (
	"context"
	"fmt"
	"time"

	"github.com/andersfylling/disgord"
	"github.com/sirupsen/logrus"
)

// Context is a single command invocation.
type Context struct {
	context.Context

	// ID identifies the invocation in the logs.
	ID string

	Router  *Router
	Session Sender
	Message *disgord.Message

	// Command is nil when no command matched.
	Command *Command

	// RawArgs is the text after the command name with leading whitespace trimmed.
	RawArgs string

	Log *logrus.Entry
}

// Args splits the raw arguments on the configured delimiters.
func (ctx *Context) Args() []string {
	return SplitArgs(ctx.RawArgs, ctx.Router.delimiters)
}

// Reply sends a message to the channel the command was issued in.
func (ctx *Context) Reply(data ...interface{}) (*disgord.Message, error) {
	return ctx.Session.SendMsg(ctx, ctx.Message.ChannelID, data...)
}

// IsOwner reports whether the invoker is one of the bot owners.
func (ctx *Context) IsOwner() bool {
	return ctx.Message.Author != nil && ctx.Router.IsOwner(ctx.Message.Author.ID)
}

// Mentions returns the users mentioned in the message, leaving out the bot itself.
func (ctx *Context) Mentions() []*disgord.User {
	users := make([]*disgord.User, 0, len(ctx.Message.Mentions))
	for _, u := range ctx.Message.Mentions {
		if u != nil && (ctx.Router.botID == 0 || u.ID != ctx.Router.botID) {
			users = append(users, u)
		}
	}
	return users
}

// DispatchErrorKind tells why a command was not run.
type DispatchErrorKind int

const (
	// OnlyForOwners is reported when a non-owner invokes an owners only command.
	OnlyForOwners DispatchErrorKind = iota + 1

	// Ratelimited is reported when the invoker's bucket is empty.
	Ratelimited
)

func (k DispatchErrorKind) String() string {
	switch k {
	case OnlyForOwners:
		return "only for owners"
	case Ratelimited:
		return "ratelimited"
	default:
		return "unknown"
	}
}

// DispatchError describes a command that was found but not run.
type DispatchError struct {
	Kind DispatchErrorKind

	// RetryAfter and IsFirstTry are set for Ratelimited.
	RetryAfter time.Duration
	IsFirstTry bool
}

func (e *DispatchError) Error() string {
	if e.Kind == Ratelimited {
		return fmt.Sprintf("%s: retry after %s", e.Kind, e.RetryAfter)
	}
	return e.Kind.String()
}
