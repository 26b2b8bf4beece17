package commands

import (
	"strings"

	"HelperBot/router"
)

// icaoWords is the spelling alphabet. Runes not in the table are passed through.
var icaoWords = map[rune]string{
	'A': "Alpha",
	'B': "Bravo",
	'C': "Charlie",
	'D': "Delta",
	'E': "Echo",
	'F': "Foxtrott",
	'G': "Golf",
	'H': "Hotel",
	'I': "India",
	'J': "Juliet",
	'K': "Kilo",
	'L': "Lima",
	'M': "Mike",
	'N': "November",
	'O': "Oskar",
	'P': "Papa",
	'Q': "Quebec",
	'R': "Romeo",
	'S': "Sierra",
	'T': "Tango",
	'U': "Uniform",
	'V': "Victor",
	'W': "Whiskey",
	'X': "X-Ray",
	'Y': "Yankee",
	'Z': "Zulu",
	'1': "One",
	'2': "Two",
	'3': "Three",
	'4': "Four",
	'5': "Five",
	'6': "Six",
	'7': "Seven",
	'8': "Eight",
	'9': "Nine",
	'0': "Ten",
	'.': "Stop",
}

// ICAO spells text with the ICAO alphabet, one word per rune, joined by ", ".
func ICAO(text string) string {
	upper := strings.ToUpper(text)
	words := make([]string, 0, len(upper))
	for _, c := range upper {
		if w, ok := icaoWords[c]; ok {
			words = append(words, w)
		} else {
			words = append(words, string(c))
		}
	}
	return strings.Join(words, ", ")
}

// Code reads the arguments back in ICAO code.
func Code() *router.Command {
	return &router.Command{
		Name:        "code",
		Aliases:     []string{"icao"},
		Description: "Reads your input in ICAO code",
		Usage:       "<text>",
		Function: func(ctx *router.Context) error {
			text := ICAO(ctx.RawArgs)
			if text == "" {
				text = EmptyMessage
			}
			_, err := ctx.Reply(text)
			return err
		},
	}
}
