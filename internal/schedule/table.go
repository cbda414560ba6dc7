package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound        = errors.New("schedule not found")
	ErrNoUpcomingEvent = errors.New("no upcoming event")
)

type Event struct {
	// Key is the name the event is stored under and looked up by.
	Key      string
	Name     string
	Location string
	Weekend  Weekend
}

func (e Event) Race() time.Time {
	return e.Weekend.RaceAt()
}

// Table holds one season. It is read-only once decoded.
type Table struct {
	Year   int
	events []Event
	byKey  map[string]int
}

func NewTable(year int, events []Event) (*Table, error) {
	t := &Table{
		Year:   year,
		events: make([]Event, 0, len(events)),
		byKey:  make(map[string]int, len(events)),
	}
	for _, ev := range events {
		if ev.Weekend == nil {
			return nil, fmt.Errorf("event %q has no sessions", ev.Key)
		}
		if _, dup := t.byKey[ev.Key]; dup {
			return nil, fmt.Errorf("event %q is listed twice", ev.Key)
		}
		t.byKey[ev.Key] = len(t.events)
		t.events = append(t.events, ev)
	}
	return t, nil
}

// Events returns the events in document order.
func (t *Table) Events() []Event {
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

func (t *Table) Lookup(name string) (Event, error) {
	idx, ok := t.byKey[name]
	if !ok {
		return Event{}, fmt.Errorf("%w: %q in %d", ErrNotFound, name, t.Year)
	}
	return t.events[idx], nil
}

type Source interface {
	// Load returns the table for year, or an error wrapping ErrNotFound
	// when no document exists for that year.
	Load(ctx context.Context, year int) (*Table, error)
}

func Lookup(ctx context.Context, src Source, year int, name string) (Event, error) {
	table, err := src.Load(ctx, year)
	if err != nil {
		return Event{}, err
	}
	return table.Lookup(name)
}
