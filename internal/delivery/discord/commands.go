package discord

import "github.com/bwmarrin/discordgo"

// riotIDOption is shared by every lookup command; autocomplete is fed from
// the search history.
func riotIDOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "riot_id",
		Description:  "Player in GameName#TagLine format",
		Required:     true,
		Autocomplete: true,
	}
}

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "lastmatch",
		Description: "Stats and AI commentary for a player's last match",
		Options:     []*discordgo.ApplicationCommandOption{riotIDOption()},
	},
	{
		Name:        "analyzematch",
		Description: "Find the worst teammate in your last match",
		Options:     []*discordgo.ApplicationCommandOption{riotIDOption()},
	},
	{
		Name:        "matchhistory",
		Description: "Summary of a player's last 5 matches",
		Options:     []*discordgo.ApplicationCommandOption{riotIDOption()},
	},
	{
		Name:        "dbstats",
		Description: "Search history statistics",
	},
	{
		Name:        "export",
		Description: "Export the search history as Excel (admins only)",
	},
}
