package commands

import (
	"HelperBot/router"

	"github.com/andersfylling/disgord"
)

const (
	avatarSize = 1024

	// AvatarFailed is sent when no URL could be built.
	AvatarFailed = "Something went wrong, please try again"
)

// target is the first mentioned user, or the author when nobody is mentioned.
func target(ctx *router.Context) *disgord.User {
	if m := ctx.Mentions(); len(m) > 0 {
		return m[0]
	}
	return ctx.Message.Author
}

// AvatarURL returns the URL of the user's avatar, animated if possible. Users
// without an avatar get their default one.
func AvatarURL(u *disgord.User) string {
	if u == nil {
		return AvatarFailed
	}
	url, err := u.AvatarURL(avatarSize, true)
	if err != nil {
		return AvatarFailed
	}
	return url
}

// DefaultAvatarURL returns the URL of the avatar Discord gives users without one.
func DefaultAvatarURL(u *disgord.User) string {
	if u == nil {
		return AvatarFailed
	}
	return AvatarURL(&disgord.User{ID: u.ID, Discriminator: u.Discriminator})
}

// Avatar shows the avatar of a user.
func Avatar() *router.Command {
	return &router.Command{
		Name:        "avatar",
		Description: "Shows the avatar of a user",
		Usage:       "[@user]",
		Function: func(ctx *router.Context) error {
			_, err := ctx.Reply(AvatarURL(target(ctx)))
			return err
		},
	}
}

// DefaultAvatar shows the default avatar of a user.
func DefaultAvatar() *router.Command {
	return &router.Command{
		Name:        "default_avatar",
		Description: "Shows the default avatar of a user",
		Usage:       "[@user]",
		Function: func(ctx *router.Context) error {
			_, err := ctx.Reply(DefaultAvatarURL(target(ctx)))
			return err
		},
	}
}
