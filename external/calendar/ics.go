package calendar

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/foxseedlab/pitwall/internal/schedule"
)

const productID = "-//pitwall//Formula 1 schedule//EN"

var sessionDurations = map[schedule.SessionKind]time.Duration{
	schedule.SessionPractice1:        time.Hour,
	schedule.SessionPractice2:        time.Hour,
	schedule.SessionPractice3:        time.Hour,
	schedule.SessionSprintQualifying: 45 * time.Minute,
	schedule.SessionSprint:           time.Hour,
	schedule.SessionQualifying:       time.Hour,
	schedule.SessionRace:             2 * time.Hour,
}

// Export renders every session of the season as a VEVENT. UIDs are stable
// across exports so calendar clients update events in place.
func Export(table *schedule.Table, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, ev := range table.Events() {
		for _, s := range ev.Weekend.Sessions() {
			vev := cal.AddEvent(eventUID(table.Year, ev.Key, s.Kind))
			vev.SetSummary(fmt.Sprintf("%s Grand Prix - %s", ev.Name, s.Kind.Label()))
			vev.SetLocation(ev.Location)
			vev.SetDtStampTime(stamp.UTC())
			vev.SetStartAt(s.StartsAt.UTC())
			vev.SetEndAt(s.StartsAt.Add(sessionDurations[s.Kind]).UTC())
		}
	}
	return cal.Serialize()
}

func eventUID(year int, key string, kind schedule.SessionKind) string {
	slug := strings.ToLower(strings.Join(strings.Fields(key), "-"))
	return fmt.Sprintf("%d-%s-%s@pitwall", year, slug, kind)
}
