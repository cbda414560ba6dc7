package command

import "fmt"

const (
	messageNotUnderstood = "I don't understand this command, try again!"

	messageHello  = "Hello there!"
	messageAbout  = "I am a bot made to help you with your F1 needs!"
	messageSong   = "The Dutch National Anthem never leaves my playlist!"
	messageWinner = "I don't have this info right now, but it should be Max Verstappen..."

	messageSubscribed              = "You are now subscribed to the Grand Prix schedule updates!"
	messageUnsubscribed            = "You are now unsubscribed from the Grand Prix schedule updates!"
	messageSubscriptionUnavailable = "I couldn't update your subscription right now, try again later!"

	messageTicketLinkFormat  = "Here is the link to buy your F1 ticket:\n%s"
	messageTicketUnavailable = "I couldn't create a ticket link right now, try again later!"
	messageRaceWelcome       = "Welcome to the race, thank you for buying your ticket!"
	messageRaceNeedsTicket   = "You need to buy a ticket to access the race! Type /ticket to get the payment link."
	messageRaceCheckFailed   = "I couldn't check your ticket right now, try again later!"

	messageScheduleRequested   = "Here is the schedule for the requested Grand Prix weekend!"
	messageScheduleNext        = "Here is the schedule for the next Grand Prix weekend!"
	messageScheduleNotFound    = "Location name not found, try again with a valid Grand Prix location!"
	messageScheduleNoUpcoming  = "There is no upcoming Grand Prix this season, see you next year!"
	messageScheduleUnavailable = "The Grand Prix schedule is unavailable right now, try again later!"

	messageDriverStandings        = "Here are the current driver standings!"
	messageConstructorStandings   = "Here are the current constructor standings!"
	driverStandingsTitle          = "Driver Standings"
	constructorStandingsTitle     = "Constructor Standings"
	driverStandingsURLFormat      = "https://www.formula1.com/en/results/%d/drivers.html"
	constructorStandingsURLFormat = "https://www.formula1.com/en/results/%d/team.html"
)

var staticReplies = map[string]string{
	commandHello:  messageHello,
	commandAbout:  messageAbout,
	commandSong:   messageSong,
	commandWinner: messageWinner,
}

func ticketLinkMessage(link string) string {
	return fmt.Sprintf(messageTicketLinkFormat, link)
}
