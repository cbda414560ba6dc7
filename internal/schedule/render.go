package schedule

import (
	"fmt"
	"time"

	"github.com/foxseedlab/pitwall/internal/reply"
)

const (
	// Field order is fixed: weekday, day, month, year, time.
	sessionTimeLayout = "Monday, 02 January 2006, 15:04 UTC"

	cardTitleFormat   = "🏁 **Formula 1 - %s Grand Prix** 🏁"
	locationFieldName = "📍 Location"
)

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(sessionTimeLayout)
}

// Render builds the schedule card for one event. An event without a weekend
// gets the location field only.
func Render(ev Event) reply.Card {
	fields := []reply.Field{
		{Name: locationFieldName, Value: ev.Location},
	}
	switch w := ev.Weekend.(type) {
	case StandardWeekend:
		fields = append(fields,
			sessionField(SessionPractice1, w.Practice1),
			sessionField(SessionPractice2, w.Practice2),
			sessionField(SessionPractice3, w.Practice3),
			sessionField(SessionQualifying, w.Qualifying),
			sessionField(SessionRace, w.Race),
		)
	case SprintWeekend:
		fields = append(fields,
			sessionField(SessionPractice1, w.Practice1),
			sessionField(SessionSprintQualifying, w.SprintQualifying),
			sessionField(SessionSprint, w.Sprint),
			sessionField(SessionQualifying, w.Qualifying),
			sessionField(SessionRace, w.Race),
		)
	}
	return reply.Card{
		Title:  fmt.Sprintf(cardTitleFormat, ev.Name),
		Color:  reply.ColorRed,
		Fields: fields,
	}
}

func sessionField(kind SessionKind, startsAt time.Time) reply.Field {
	return reply.Field{Name: kind.Label(), Value: FormatTimestamp(startsAt)}
}
