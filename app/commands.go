package app

import "github.com/bwmarrin/discordgo"

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "agent",
		Description: "Get information about a specific Valorant agent",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "The agent name",
				Required:    true,
			},
		},
	},
	{
		Name:        "agents",
		Description: "Lists all Valorant agents",
	},
	{
		Name:        "newestagent",
		Description: "See the newest Valorant agent",
	},
	{
		Name:        "skin",
		Description: "Look up a skin",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "The skin name (e.g. \"Reaver Vandal\")",
				Required:    true,
			},
		},
	},
	{
		Name:        "skins",
		Description: "List skins for a specific weapon",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "weapon",
				Description: "The weapon name (e.g. \"Vandal\")",
				Required:    true,
			},
		},
	},
	{
		Name:        "randomskin",
		Description: "Get a random Valorant skin",
	},
	{
		Name:        "bundle",
		Description: "View a specific Valorant bundle",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Name of the bundle",
				Required:    true,
			},
		},
	},
	{
		Name:        "bundles",
		Description: "Browse Valorant bundles",
	},
	{
		Name:        "currentbundle",
		Description: "Shows the current bundle from the Valorant store",
	},
	{
		Name:        "battlepass",
		Description: "See the current Valorant battle pass",
	},
	{
		Name:        "currentseason",
		Description: "Get information about the current Valorant season",
	},
	{
		Name:        "currentevent",
		Description: "Get information about the current Valorant event",
	},
	{
		Name:        "currentpatchnotes",
		Description: "Show the latest Valorant patch notes with TL;DR",
	},
	{
		Name:        "map",
		Description: "Look up a Valorant map",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "The map name (e.g. \"Ascent\")",
				Required:    true,
			},
		},
	},
	{
		Name:        "weapon",
		Description: "Look up a weapon",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "The weapon name",
				Required:    true,
			},
		},
	},
	{
		Name:        "team",
		Description: "Look up a Valorant team",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "The name of the team",
				Required:    true,
			},
		},
	},
	{
		Name:        "team-standings",
		Description: "Look up a team's wins and losses in their current or most recent tournament",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "team",
				Description: "The name of the team",
				Required:    true,
			},
		},
	},
	{
		Name:        "player",
		Description: "Look up a Valorant player",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "ign",
				Description: "The in-game name of the player",
				Required:    true,
			},
		},
	},
	{
		Name:        "transfers",
		Description: "Show the 5 latest Valorant player transfers",
	},
	{
		Name:        "upcomingmatches",
		Description: "Show upcoming Valorant matches",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "tournament",
				Description: "Only show matches for a specific tournament",
				Required:    false,
			},
		},
	},
	{
		Name:        "upcomingtournaments",
		Description: "Show upcoming Valorant tournaments",
	},
	{
		Name:        "tournament-results",
		Description: "Look up recent results for a tournament",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "tournament",
				Description: "The name of the tournament",
				Required:    true,
			},
		},
	},
}
