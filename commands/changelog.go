package commands

import (
	"strings"

	"HelperBot/router"

	"github.com/andersfylling/disgord"
)

const changelogColor = 0xC27C0E

// changelogs holds the notes per version, oldest first.
var changelogs = []struct {
	version string
	title   string
	notes   string
}{
	{"2.0", "Version 2.0", "The entire bot was rewritten, the commands work slightly different but should all produce the same results"},
}

// ChangelogEmbed builds the changelog embed for a version.
func ChangelogEmbed(version string) *disgord.Embed {
	field := &disgord.EmbedField{Inline: true}
	for _, c := range changelogs {
		if c.version == version {
			field.Name = c.title
			field.Value = c.notes
		}
	}
	if field.Name == "" {
		versions := make([]string, 0, len(changelogs))
		for _, c := range changelogs {
			versions = append(versions, c.version)
		}
		field.Name = "Unknown Version"
		field.Value = "This version does not exist. Valid versions are:\n" + strings.Join(versions, "\n")
	}

	return &disgord.Embed{
		Color:       changelogColor,
		Description: "To get a changelog from a prior version (back to " + changelogs[0].version + ") pass the version number as an argument to this command.",
		Fields:      []*disgord.EmbedField{field},
	}
}

// Changelog shows the changelog of a version, the running one by default.
func Changelog(current string) *router.Command {
	return &router.Command{
		Name:        "changelog",
		Description: "Shows a changelog",
		Usage:       "[version]",
		Function: func(ctx *router.Context) error {
			version := current
			if args := ctx.Args(); len(args) > 0 {
				version = args[0]
			}
			_, err := ctx.Reply(ChangelogEmbed(version))
			return err
		},
	}
}
