package router

// Command is a single chat command.
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Usage       string

	// OwnersOnly restricts the command to the bot owners.
	OwnersOnly bool

	Function func(ctx *Context) error

	group *Group
}

// Group returns the group the command was registered in.
func (c *Command) Group() *Group {
	return c.group
}

// RequiresOwner reports whether the command or its group is restricted to owners.
func (c *Command) RequiresOwner() bool {
	return c.OwnersOnly || (c.group != nil && c.group.OwnersOnly)
}

// Group is a named collection of commands.
type Group struct {
	Name        string
	Description string

	// Prefixes must be typed before the command name. A group without prefixes
	// exposes its commands directly.
	Prefixes []string

	// OwnersOnly restricts every command in the group to the bot owners.
	OwnersOnly bool

	// DefaultCommand runs when a prefix is typed without a known command name.
	DefaultCommand *Command

	commands []*Command
}

// Commands returns the commands of the group in registration order.
func (g *Group) Commands() []*Command {
	return append([]*Command(nil), g.commands...)
}
