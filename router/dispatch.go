package router

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/andersfylling/disgord"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Dispatch handles one incoming message. Messages that are not commands are ignored.
func (r *Router) Dispatch(ctx context.Context, s Sender, msg *disgord.Message) {
	if msg == nil || msg.Author == nil || msg.Author.Bot {
		return
	}
	if r.botID != 0 && msg.Author.ID == r.botID {
		return
	}

	rest, ok := r.stripPrefix(msg.Content)
	if !ok {
		return
	}
	name, rest := nextToken(rest)
	if name == "" {
		return
	}

	inv := &Context{
		Context: ctx,
		ID:      uuid.New().String(),
		Router:  r,
		Session: s,
		Message: msg,
	}
	inv.Log = entry(r.log).WithFields(logrus.Fields{
		"invocation": inv.ID,
		"user":       msg.Author.Username,
		"channel":    msg.ChannelID.String(),
	})

	cmd, rest, ok := r.resolve(name, rest)
	if !ok {
		inv.Log.WithField("command", name).Debug("Unknown command")
		// "--" or "-_-" in chat is not an attempt at a command.
		if r.notFound != nil && startsWithLetterOrDigit(name) {
			r.notFound(inv, name)
		}
		return
	}
	inv.Command = cmd
	inv.RawArgs = strings.TrimLeftFunc(rest, unicode.IsSpace)
	inv.Log = inv.Log.WithField("command", cmd.Name)

	if cmd.RequiresOwner() && !inv.IsOwner() {
		r.dispatchError(inv, &DispatchError{Kind: OnlyForOwners})
		return
	}

	if r.bucket != nil {
		if wait, first, ok := r.bucket.Take(msg.Author.ID); !ok {
			r.dispatchError(inv, &DispatchError{Kind: Ratelimited, RetryAfter: wait, IsFirstTry: first})
			return
		}
	}

	if r.before != nil && !r.before(inv) {
		return
	}
	err := run(inv)
	if r.after != nil {
		r.after(inv, err)
	}
}

// resolve finds the command named by the first token, handling group prefixes and default commands.
func (r *Router) resolve(name, rest string) (*Command, string, bool) {
	if g, ok := r.prefixed[strings.ToLower(name)]; ok {
		sub, subRest := nextToken(rest)
		if sub != "" {
			if c, ok := r.Lookup(name, sub); ok {
				return c, subRest, true
			}
		}
		if g.DefaultCommand != nil {
			return g.DefaultCommand, rest, true
		}
		return nil, rest, false
	}
	c, ok := r.Lookup("", name)
	return c, rest, ok
}

func (r *Router) dispatchError(inv *Context, derr *DispatchError) {
	inv.Log.WithField("reason", derr.Kind.String()).Debug("Command not dispatched")
	if r.onDispatchError != nil {
		r.onDispatchError(inv, derr)
	}
}

// run calls the command function, turning a panic into an error.
func run(inv *Context) (err error) {
	defer func() {
		if v := recover(); v != nil {
			inv.Log.WithField("panic", v).Error("Command panicked")
			err = errors.Errorf("command panicked: %v", v)
		}
	}()
	return inv.Command.Function(inv)
}

// stripPrefix removes the text prefix or a leading bot mention.
func (r *Router) stripPrefix(content string) (string, bool) {
	if strings.HasPrefix(content, r.prefix) {
		rest := content[len(r.prefix):]
		// The command name has to follow the prefix directly.
		if c, _ := utf8.DecodeRuneInString(rest); rest == "" || unicode.IsSpace(c) {
			return "", false
		}
		return rest, true
	}
	if r.botID != 0 {
		id := r.botID.String()
		for _, mention := range []string{"<@" + id + ">", "<@!" + id + ">"} {
			if strings.HasPrefix(content, mention) {
				return strings.TrimLeftFunc(content[len(mention):], unicode.IsSpace), true
			}
		}
	}
	return "", false
}

func startsWithLetterOrDigit(s string) bool {
	c, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}

// nextToken splits off the first whitespace separated word.
func nextToken(s string) (string, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

// SplitArgs splits s on the delimiters. At each position the longest matching delimiter wins.
// Arguments are trimmed and empty ones are dropped.
func SplitArgs(s string, delimiters []string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if len(delimiters) == 0 {
		return []string{s}
	}

	var args []string
	start := 0
	for i := 0; i < len(s); {
		matched := 0
		for _, d := range delimiters {
			if d != "" && len(d) > matched && strings.HasPrefix(s[i:], d) {
				matched = len(d)
			}
		}
		if matched == 0 {
			i++
			continue
		}
		args = appendArg(args, s[start:i])
		i += matched
		start = i
	}
	return appendArg(args, s[start:])
}

func appendArg(args []string, arg string) []string {
	if arg = strings.TrimSpace(arg); arg != "" {
		args = append(args, arg)
	}
	return args
}

func entry(l logrus.FieldLogger) *logrus.Entry {
	switch v := l.(type) {
	case *logrus.Entry:
		return v
	case *logrus.Logger:
		return logrus.NewEntry(v)
	default:
		return l.WithFields(nil)
	}
}

// NotFoundReply is the default NotFoundFunc. It answers with a pointer to the help command.
func NotFoundReply(ctx *Context, name string) {
	text := fmt.Sprintf("Could not find '%s'. Use %shelp to list commands.", name, ctx.Router.prefix)
	if _, err := ctx.Reply(text); err != nil {
		ctx.Log.WithError(err).Warn("Failed to send not found reply")
	}
}
