package schedule

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

type rawEvent struct {
	Name     string            `yaml:"name"`
	Location string            `yaml:"location"`
	Sessions map[string]string `yaml:"sessions"`
}

// DecodeTable parses one season document. JSON is valid YAML, so the same
// decoder serves both file formats; walking the node tree keeps events in
// document order, which ResolveNext relies on for ties.
func DecodeTable(year int, data []byte) (*Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing schedule %d: %w", year, err)
	}
	if len(doc.Content) == 0 {
		return NewTable(year, nil)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schedule %d: top level must be a mapping of event names", year)
	}

	events := make([]Event, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		var raw rawEvent
		if err := root.Content[i+1].Decode(&raw); err != nil {
			return nil, fmt.Errorf("schedule %d: event %q: %w", year, key, err)
		}
		ev, err := raw.toEvent(key)
		if err != nil {
			return nil, fmt.Errorf("schedule %d: event %q: %w", year, key, err)
		}
		events = append(events, ev)
	}
	return NewTable(year, events)
}

func (r rawEvent) toEvent(key string) (Event, error) {
	times := make(map[SessionKind]time.Time, len(r.Sessions))
	for k, v := range r.Sessions {
		kind := SessionKind(k)
		if !isKnownKind(kind) {
			return Event{}, fmt.Errorf("unknown session %q", k)
		}
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return Event{}, fmt.Errorf("session %s: %w", k, err)
		}
		times[kind] = ts.UTC()
	}

	weekend, err := buildWeekend(times)
	if err != nil {
		return Event{}, err
	}
	if err := checkOrder(weekend.Sessions()); err != nil {
		return Event{}, err
	}

	name := r.Name
	if name == "" {
		name = key
	}
	return Event{
		Key:      key,
		Name:     name,
		Location: r.Location,
		Weekend:  weekend,
	}, nil
}

func buildWeekend(times map[SessionKind]time.Time) (Weekend, error) {
	_, hasSprint := times[SessionSprint]
	_, hasSprintQuali := times[SessionSprintQualifying]
	_, hasFP2 := times[SessionPractice2]
	_, hasFP3 := times[SessionPractice3]

	if (hasSprint || hasSprintQuali) && (hasFP2 || hasFP3) {
		return nil, fmt.Errorf("sprint and standard sessions cannot be mixed")
	}
	if hasSprint {
		if err := requireSessions(times, SessionPractice1, SessionSprintQualifying, SessionSprint, SessionQualifying, SessionRace); err != nil {
			return nil, err
		}
		return SprintWeekend{
			Practice1:        times[SessionPractice1],
			SprintQualifying: times[SessionSprintQualifying],
			Sprint:           times[SessionSprint],
			Qualifying:       times[SessionQualifying],
			Race:             times[SessionRace],
		}, nil
	}
	if err := requireSessions(times, SessionPractice1, SessionPractice2, SessionPractice3, SessionQualifying, SessionRace); err != nil {
		return nil, err
	}
	return StandardWeekend{
		Practice1:  times[SessionPractice1],
		Practice2:  times[SessionPractice2],
		Practice3:  times[SessionPractice3],
		Qualifying: times[SessionQualifying],
		Race:       times[SessionRace],
	}, nil
}

func requireSessions(times map[SessionKind]time.Time, kinds ...SessionKind) error {
	for _, k := range kinds {
		if _, ok := times[k]; !ok {
			return fmt.Errorf("missing session %s", k)
		}
	}
	return nil
}

func checkOrder(sessions []Session) error {
	for i := 1; i < len(sessions); i++ {
		if !sessions[i].StartsAt.After(sessions[i-1].StartsAt) {
			return fmt.Errorf("session %s does not start after %s", sessions[i].Kind, sessions[i-1].Kind)
		}
	}
	return nil
}

func isKnownKind(k SessionKind) bool {
	for _, c := range canonicalOrder {
		if c == k {
			return true
		}
	}
	return false
}
