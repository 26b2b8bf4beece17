package router

import (
	"context"
	"strings"

	"github.com/andersfylling/disgord"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Sender is the part of the Discord session the router and commands talk to.
// A disgord.Session satisfies it.
type Sender interface {
	SendMsg(ctx context.Context, channelID disgord.Snowflake, data ...interface{}) (*disgord.Message, error)
	DeleteMessage(ctx context.Context, channelID, msgID disgord.Snowflake, flags ...disgord.Flag) error
}

// BeforeFunc runs before a command. Returning false stops the command from running.
type BeforeFunc func(ctx *Context) bool

// AfterFunc runs after a command with the error it returned.
type AfterFunc func(ctx *Context, err error)

// DispatchErrorFunc is called when a command was found but could not be run.
type DispatchErrorFunc func(ctx *Context, err *DispatchError)

// NotFoundFunc is called when the message carries the prefix but names no command.
type NotFoundFunc func(ctx *Context, name string)

// Config is used to configure the router.
type Config struct {
	// Prefix is the text a message has to start with. Defaults to "-".
	Prefix string

	// Delimiters split the argument remainder into arguments.
	Delimiters []string

	// BotID enables "@bot command" invocations when set.
	BotID disgord.Snowflake

	// Owners may run owners only commands.
	Owners []disgord.Snowflake

	// Bucket throttles invocations per user. Nil disables throttling.
	Bucket *Bucket

	Before          BeforeFunc
	After           AfterFunc
	OnDispatchError DispatchErrorFunc
	NotFound        NotFoundFunc

	Logger logrus.FieldLogger
}

// Router holds the command table. It is built once by a Builder and never changes afterwards.
type Router struct {
	prefix     string
	delimiters []string
	botID      disgord.Snowflake
	owners     map[disgord.Snowflake]struct{}
	bucket     *Bucket

	before          BeforeFunc
	after           AfterFunc
	onDispatchError DispatchErrorFunc
	notFound        NotFoundFunc

	log logrus.FieldLogger

	groups   []*Group
	commands []*Command
	prefixed map[string]*Group
	table    map[string]map[string]*Command
}

// Builder collects groups and commands at startup.
type Builder struct {
	cfg    Config
	groups []*Group
	err    error
}

// NewBuilder creates a builder for a router with the given config.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// Group adds a group and its commands in the given order.
func (b *Builder) Group(g *Group, cmds ...*Command) *Builder {
	if b.err != nil {
		return b
	}
	if g == nil {
		b.err = errors.New("nil group")
		return b
	}
	for _, existing := range b.groups {
		if existing == g {
			b.err = errors.Errorf("group %q registered twice", g.Name)
			return b
		}
	}
	for _, c := range cmds {
		if c == nil {
			b.err = errors.Errorf("nil command in group %q", g.Name)
			return b
		}
		if c.group != nil {
			b.err = errors.Errorf("command %q already belongs to group %q", c.Name, c.group.Name)
			return b
		}
		c.group = g
		g.commands = append(g.commands, c)
	}
	b.groups = append(b.groups, g)
	return b
}

// Build validates the table and returns the router.
func (b *Builder) Build() (*Router, error) {
	if b.err != nil {
		return nil, b.err
	}

	cfg := b.cfg
	if cfg.Prefix == "" {
		cfg.Prefix = "-"
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	r := &Router{
		prefix:          cfg.Prefix,
		delimiters:      cfg.Delimiters,
		botID:           cfg.BotID,
		owners:          make(map[disgord.Snowflake]struct{}, len(cfg.Owners)),
		bucket:          cfg.Bucket,
		before:          cfg.Before,
		after:           cfg.After,
		onDispatchError: cfg.OnDispatchError,
		notFound:        cfg.NotFound,
		log:             cfg.Logger,
		groups:          b.groups,
		prefixed:        map[string]*Group{},
		table:           map[string]map[string]*Command{},
	}
	for _, id := range cfg.Owners {
		r.owners[id] = struct{}{}
	}

	for _, g := range b.groups {
		keys := g.Prefixes
		if len(keys) == 0 {
			keys = []string{""}
		}
		for _, p := range keys {
			p = strings.ToLower(p)
			if p != "" {
				if _, ok := r.prefixed[p]; ok {
					return nil, errors.Errorf("group prefix %q registered twice", p)
				}
				r.prefixed[p] = g
			}
			if r.table[p] == nil {
				r.table[p] = map[string]*Command{}
			}
			for _, c := range g.commands {
				if c.Name == "" {
					return nil, errors.Errorf("unnamed command in group %q", g.Name)
				}
				if c.Function == nil {
					return nil, errors.Errorf("command %q has no function", c.Name)
				}
				for _, name := range append([]string{c.Name}, c.Aliases...) {
					name = strings.ToLower(name)
					if _, ok := r.table[p][name]; ok {
						return nil, errors.Errorf("command %q registered twice under prefix %q", name, p)
					}
					r.table[p][name] = c
				}
			}
		}
		if g.DefaultCommand != nil && g.DefaultCommand.group != g {
			return nil, errors.Errorf("default command of group %q is not one of its commands", g.Name)
		}
		r.commands = append(r.commands, g.commands...)
	}

	// Prefixed group names shadow commands, so a clash would make the command unreachable.
	for p := range r.prefixed {
		if _, ok := r.table[""][p]; ok {
			return nil, errors.Errorf("group prefix %q clashes with a command name", p)
		}
	}

	return r, nil
}

// Lookup finds a command by group prefix and name. Use an empty prefix for groups without one.
func (r *Router) Lookup(prefix, name string) (*Command, bool) {
	cmds, ok := r.table[strings.ToLower(prefix)]
	if !ok {
		return nil, false
	}
	c, ok := cmds[strings.ToLower(name)]
	return c, ok
}

// Groups returns the registered groups in registration order.
func (r *Router) Groups() []*Group {
	return append([]*Group(nil), r.groups...)
}

// Commands returns every registered command in registration order.
func (r *Router) Commands() []*Command {
	return append([]*Command(nil), r.commands...)
}

// Prefix returns the configured command prefix.
func (r *Router) Prefix() string {
	return r.prefix
}

// IsOwner reports whether the user may run owners only commands.
func (r *Router) IsOwner(id disgord.Snowflake) bool {
	_, ok := r.owners[id]
	return ok
}
