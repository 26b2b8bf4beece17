package categories

import "HelperBot/router"

// General holds the commands that belong nowhere else, such as help.
func General() *router.Group {
	return &router.Group{
		Name:        "General",
		Description: "General commands.",
	}
}

// Text commands make the bot repeat text.
func Text() *router.Group {
	return &router.Group{
		Name:        "Text",
		Description: "A group with commands that make the bot repeat text",
	}
}

// Test commands are used to check that the bot is alive.
func Test() *router.Group {
	return &router.Group{
		Name:        "Test",
		Description: "A group with commands to test the bot",
	}
}

// Util commands are small utilities.
func Util() *router.Group {
	return &router.Group{
		Name:        "Util",
		Description: "A group with utility commands",
	}
}

// Debug commands can only be used by the bot owners.
func Debug() *router.Group {
	return &router.Group{
		Name:        "Debug",
		Description: "Debug commands",
		OwnersOnly:  true,
	}
}
