package command

import "github.com/foxseedlab/pitwall/internal/discord"

const (
	commandHello       = "hello"
	commandAbout       = "about"
	commandSong        = "song"
	commandWinner      = "winner"
	commandSubscribe   = "subscribe"
	commandUnsubscribe = "unsubscribe"
	commandTicket      = "ticket"
	commandRace        = "race"
	commandStandings   = "standings"
	commandGP          = "gp"

	subcommandDrivers      = "drivers"
	subcommandConstructors = "constructors"
	subcommandLocation     = "location"
	subcommandNext         = "next"

	optionLocationName = "name"
)

func SlashCommandDefinitions() []discord.SlashCommandDefinition {
	return []discord.SlashCommandDefinition{
		{Name: commandHello, Description: "Say hello to the bot."},
		{Name: commandAbout, Description: "Find out what this bot does."},
		{Name: commandSong, Description: "The bot's favourite song."},
		{Name: commandWinner, Description: "Who is going to win the championship?"},
		{Name: commandSubscribe, Description: "Get race week schedule updates in this chat."},
		{Name: commandUnsubscribe, Description: "Stop race week schedule updates in this chat."},
		{Name: commandTicket, Description: "Get a link to buy your race ticket."},
		{Name: commandRace, Description: "Enter the race if you have a ticket."},
		{
			Name:        commandStandings,
			Description: "Current championship standings.",
			Options: []discord.SlashCommandOption{
				{Type: discord.OptionSubCommand, Name: subcommandDrivers, Description: "Drivers' championship."},
				{Type: discord.OptionSubCommand, Name: subcommandConstructors, Description: "Constructors' championship."},
			},
		},
		{
			Name:        commandGP,
			Description: "Grand Prix weekend schedules.",
			Options: []discord.SlashCommandOption{
				{
					Type:        discord.OptionSubCommand,
					Name:        subcommandLocation,
					Description: "Schedule for a Grand Prix by name.",
					Options: []discord.SlashCommandOption{
						{Type: discord.OptionString, Name: optionLocationName, Description: "Grand Prix name, e.g. Monaco.", Required: true},
					},
				},
				{Type: discord.OptionSubCommand, Name: subcommandNext, Description: "Schedule for the next Grand Prix."},
			},
		},
	}
}
