package schedule

import (
	"context"
	"errors"
	"time"
)

const (
	imminentWithinDays = 5
	day                = 24 * time.Hour
)

// ResolveNext returns the event whose race is the earliest one strictly
// after now. When two races share a start time the one listed first in the
// table wins. imminent reports whether the race is at most five days away.
func ResolveNext(table *Table, now time.Time) (Event, bool, error) {
	var (
		next  Event
		found bool
	)
	for _, ev := range table.events {
		race := ev.Race()
		if !race.After(now) {
			continue
		}
		if !found || race.Before(next.Race()) {
			next = ev
			found = true
		}
	}
	if !found {
		return Event{}, false, ErrNoUpcomingEvent
	}
	return next, DaysUntil(now, next.Race()) <= imminentWithinDays, nil
}

// DaysUntil counts whole days from now to t, rounding partial days up, so
// exactly five days is 5 and one second more is 6.
func DaysUntil(now, t time.Time) int {
	d := t.Sub(now)
	if d <= 0 {
		return 0
	}
	return int((d + day - 1) / day)
}

// Next loads the season now falls in and resolves its next event. A season
// without a schedule document has no upcoming event.
func Next(ctx context.Context, src Source, now time.Time) (Event, bool, error) {
	table, err := src.Load(ctx, now.UTC().Year())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Event{}, false, ErrNoUpcomingEvent
		}
		return Event{}, false, err
	}
	return ResolveNext(table, now)
}
