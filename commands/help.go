package commands

import (
	"strings"

	"HelperBot/router"

	"github.com/andersfylling/disgord"
)

const helpColor = 0x5865F2

// HelpEmbed lists the groups and commands the invoker may use.
func HelpEmbed(r *router.Router, owner bool) *disgord.Embed {
	e := &disgord.Embed{
		Title:       "Commands",
		Color:       helpColor,
		Description: "To get help with an individual command, pass its name as an argument to this command.",
	}
	for _, g := range r.Groups() {
		if g.OwnersOnly && !owner {
			continue
		}
		var names []string
		for _, c := range g.Commands() {
			if c.RequiresOwner() && !owner {
				continue
			}
			names = append(names, "`"+c.Name+"`")
		}
		if len(names) == 0 {
			continue
		}
		name := g.Name
		if len(g.Prefixes) > 0 {
			name += " (prefix: `" + g.Prefixes[0] + "`)"
		}
		e.Fields = append(e.Fields, &disgord.EmbedField{
			Name:  name,
			Value: "+ " + strings.Join(names, " "),
		})
	}
	return e
}

// findCommand looks a command up by name or alias, or by "<group prefix> <name>".
func findCommand(r *router.Router, query string) (*router.Command, bool) {
	words := strings.Fields(query)
	switch len(words) {
	case 1:
		for _, c := range r.Commands() {
			if strings.EqualFold(c.Name, words[0]) {
				return c, true
			}
			for _, a := range c.Aliases {
				if strings.EqualFold(a, words[0]) {
					return c, true
				}
			}
		}
	case 2:
		return r.Lookup(words[0], words[1])
	}
	return nil, false
}

// CommandHelp describes a single command. Commands hidden from the invoker are not found.
func CommandHelp(r *router.Router, owner bool, query string) (*disgord.Embed, bool) {
	c, ok := findCommand(r, query)
	if !ok || (c.RequiresOwner() && !owner) {
		return nil, false
	}

	usage := r.Prefix()
	if p := c.Group().Prefixes; len(p) > 0 {
		usage += p[0] + " "
	}
	usage += c.Name
	if c.Usage != "" {
		usage += " " + c.Usage
	}

	e := &disgord.Embed{
		Title:       c.Name,
		Color:       helpColor,
		Description: c.Description,
		Fields: []*disgord.EmbedField{
			{Name: "Usage", Value: "`" + usage + "`"},
			{Name: "Group", Value: c.Group().Name, Inline: true},
		},
	}
	if len(c.Aliases) > 0 {
		e.Fields = append(e.Fields, &disgord.EmbedField{Name: "Aliases", Value: strings.Join(c.Aliases, ", "), Inline: true})
	}
	if c.RequiresOwner() {
		e.Fields = append(e.Fields, &disgord.EmbedField{Name: "Owners only", Value: "yes", Inline: true})
	}
	return e, true
}

// NotFoundText is sent when help is asked about an unknown command.
func NotFoundText(name string) string {
	return "Could not find '" + name + "'"
}

// Help lists the commands, or describes one.
func Help() *router.Command {
	return &router.Command{
		Name:        "help",
		Description: "Lists the commands, or shows help for one",
		Usage:       "[command]",
		Function: func(ctx *router.Context) error {
			owner := ctx.IsOwner()
			if ctx.RawArgs == "" {
				_, err := ctx.Reply(HelpEmbed(ctx.Router, owner))
				return err
			}
			if e, ok := CommandHelp(ctx.Router, owner, ctx.RawArgs); ok {
				_, err := ctx.Reply(e)
				return err
			}
			_, err := ctx.Reply(NotFoundText(ctx.RawArgs))
			return err
		},
	}
}
