package schedule

import "time"

// SessionKind values match the keys used in the yearly schedule documents.
type SessionKind string

const (
	SessionPractice1        SessionKind = "fp1"
	SessionPractice2        SessionKind = "fp2"
	SessionPractice3        SessionKind = "fp3"
	SessionSprintQualifying SessionKind = "sprintQualifying"
	SessionSprint           SessionKind = "sprint"
	SessionQualifying       SessionKind = "qualifying"
	SessionRace             SessionKind = "gp"
)

// canonicalOrder is the order sessions run in and are displayed in.
var canonicalOrder = []SessionKind{
	SessionPractice1,
	SessionPractice2,
	SessionPractice3,
	SessionSprintQualifying,
	SessionSprint,
	SessionQualifying,
	SessionRace,
}

func (k SessionKind) Label() string {
	switch k {
	case SessionPractice1:
		return "Practice 1"
	case SessionPractice2:
		return "Practice 2"
	case SessionPractice3:
		return "Practice 3"
	case SessionSprintQualifying:
		return "Sprint Qualifying"
	case SessionSprint:
		return "Sprint"
	case SessionQualifying:
		return "Qualifying"
	case SessionRace:
		return "Race"
	default:
		return string(k)
	}
}

type Session struct {
	Kind     SessionKind
	StartsAt time.Time
}

// Weekend is either a StandardWeekend or a SprintWeekend. The unexported
// method keeps the set closed to this package.
type Weekend interface {
	Sessions() []Session
	RaceAt() time.Time
	weekend()
}

type StandardWeekend struct {
	Practice1  time.Time
	Practice2  time.Time
	Practice3  time.Time
	Qualifying time.Time
	Race       time.Time
}

func (w StandardWeekend) Sessions() []Session {
	return []Session{
		{Kind: SessionPractice1, StartsAt: w.Practice1},
		{Kind: SessionPractice2, StartsAt: w.Practice2},
		{Kind: SessionPractice3, StartsAt: w.Practice3},
		{Kind: SessionQualifying, StartsAt: w.Qualifying},
		{Kind: SessionRace, StartsAt: w.Race},
	}
}

func (w StandardWeekend) RaceAt() time.Time { return w.Race }
func (StandardWeekend) weekend()            {}

type SprintWeekend struct {
	Practice1        time.Time
	SprintQualifying time.Time
	Sprint           time.Time
	Qualifying       time.Time
	Race             time.Time
}

func (w SprintWeekend) Sessions() []Session {
	return []Session{
		{Kind: SessionPractice1, StartsAt: w.Practice1},
		{Kind: SessionSprintQualifying, StartsAt: w.SprintQualifying},
		{Kind: SessionSprint, StartsAt: w.Sprint},
		{Kind: SessionQualifying, StartsAt: w.Qualifying},
		{Kind: SessionRace, StartsAt: w.Race},
	}
}

func (w SprintWeekend) RaceAt() time.Time { return w.Race }
func (SprintWeekend) weekend()            {}
