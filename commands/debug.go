package commands

import (
	"runtime"
	"strconv"
	"strings"
	"time"

	"HelperBot/router"

	"github.com/andersfylling/disgord"
	"github.com/hako/durafmt"
	"github.com/olekukonko/tablewriter"
)

// CommandTable renders the command table of the router as plain text.
func CommandTable(r *router.Router) string {
	buf := &strings.Builder{}
	table := tablewriter.NewWriter(buf)
	table.SetHeader([]string{"Group", "Command", "Aliases", "Owners"})
	table.SetAutoWrapText(false)
	for _, c := range r.Commands() {
		owners := ""
		if c.RequiresOwner() {
			owners = "yes"
		}
		table.Append([]string{c.Group().Name, c.Name, strings.Join(c.Aliases, ", "), owners})
	}
	table.Render()
	return buf.String()
}

// DebugEmbed describes the running bot.
func DebugEmbed(r *router.Router, version string, uptime time.Duration) *disgord.Embed {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return &disgord.Embed{
		Description: "**Bot Information:**\n```\n" + CommandTable(r) + "```",
		Fields: []*disgord.EmbedField{
			{
				Name:   "Version:",
				Value:  version,
				Inline: true,
			},
			{
				Name:   "Uptime:",
				Value:  durafmt.Parse(uptime.Truncate(time.Second)).String(),
				Inline: true,
			},
			{
				Name:   "Go Version:",
				Value:  runtime.Version(),
				Inline: true,
			},
			{
				Name:   "Disgord Version:",
				Value:  disgord.Version,
				Inline: true,
			},
			{
				Name:   "Running Goroutines:",
				Value:  strconv.Itoa(runtime.NumGoroutine()),
				Inline: true,
			},
			{
				Name:   "RAM Usage:",
				Value:  strconv.Itoa(int(m.Alloc/1000000)) + "MB",
				Inline: true,
			},
			{
				Name:   "Garbage Collections:",
				Value:  strconv.Itoa(int(m.NumGC)),
				Inline: true,
			},
		},
	}
}

// Debug sends information about the bot to its owners.
func Debug(version string, started time.Time) *router.Command {
	return &router.Command{
		Name:        "debug",
		Description: "Current indev command (owner only)",
		OwnersOnly:  true,
		Function: func(ctx *router.Context) error {
			_, err := ctx.Reply(DebugEmbed(ctx.Router, version, time.Since(started)))
			return err
		},
	}
}
