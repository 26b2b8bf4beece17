package commands

import (
	"HelperBot/router"

	"github.com/andersfylling/disgord"
)

// EmptyMessage is sent instead of an empty echo.
const EmptyMessage = "Cannot send an empty message"

// EchoText returns what echo should send for the given arguments.
func EchoText(args string) string {
	if args == "" {
		return EmptyMessage
	}
	return args
}

// Echo repeats the message.
func Echo() *router.Command {
	return &router.Command{
		Name:        "echo",
		Description: "Repeats your message",
		Usage:       "<message>",
		Function: func(ctx *router.Context) error {
			_, err := ctx.Reply(EchoText(ctx.RawArgs))
			return err
		},
	}
}

// Say repeats the message with text to speech.
func Say() *router.Command {
	return &router.Command{
		Name:        "say",
		Description: "Repeats your message with TTS",
		Usage:       "<message>",
		Function:    say,
	}
}

func say(ctx *router.Context) error {
	if ctx.RawArgs == "" {
		_, err := ctx.Reply(EmptyMessage)
		return err
	}
	_, err := ctx.Reply(&disgord.CreateMessageParams{
		Content: ctx.RawArgs,
		Tts:     true,
	})
	return err
}

// Whisper deletes the invoking message and then says it, so the author is not shown.
func Whisper() *router.Command {
	return &router.Command{
		Name:        "whisper",
		Description: "Deletes your message, then repeats it with TTS (leaves no trace of the author)",
		Usage:       "<message>",
		Function: func(ctx *router.Context) error {
			if err := ctx.Session.DeleteMessage(ctx, ctx.Message.ChannelID, ctx.Message.ID); err != nil {
				return err
			}
			return say(ctx)
		},
	}
}
