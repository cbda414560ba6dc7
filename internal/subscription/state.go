package subscription

import "sort"

type ChannelKind string

const (
	ChannelKindGuild  ChannelKind = "guild"
	ChannelKindDirect ChannelKind = "direct"
)

type Record struct {
	ChannelID   string      `json:"channelId"`
	ChannelKind ChannelKind `json:"channelKind"`
	Subscribed  bool        `json:"subscribed"`
}

// State maps a chat identity (guild id, or the DM participant id) to its record.
type State map[string]Record

type Status int

const (
	StatusAbsent Status = iota
	StatusSubscribed
	StatusUnsubscribed
)

type Intent int

const (
	IntentUnchanged Intent = iota
	IntentSubscribe
	IntentUnsubscribe
)

var transitions = map[Status]map[Intent]Status{
	StatusAbsent: {
		IntentUnchanged:   StatusSubscribed,
		IntentSubscribe:   StatusSubscribed,
		IntentUnsubscribe: StatusUnsubscribed,
	},
	StatusSubscribed: {
		IntentUnchanged:   StatusSubscribed,
		IntentSubscribe:   StatusSubscribed,
		IntentUnsubscribe: StatusUnsubscribed,
	},
	StatusUnsubscribed: {
		IntentUnchanged:   StatusUnsubscribed,
		IntentSubscribe:   StatusSubscribed,
		IntentUnsubscribe: StatusUnsubscribed,
	},
}

func Transition(from Status, intent Intent) Status {
	if next, ok := transitions[from][intent]; ok {
		return next
	}
	return from
}

func (s State) Status(chatID string) Status {
	rec, ok := s[chatID]
	switch {
	case !ok:
		return StatusAbsent
	case rec.Subscribed:
		return StatusSubscribed
	default:
		return StatusUnsubscribed
	}
}

// Upsert returns a copy of state with chatID's routing data replaced by the
// latest observed channel. The subscribed flag only moves when intent says so,
// except on first contact where it defaults to subscribed.
func Upsert(state State, chatID, channelID string, kind ChannelKind, intent Intent) State {
	next := make(State, len(state)+1)
	for k, v := range state {
		next[k] = v
	}
	status := Transition(state.Status(chatID), intent)
	next[chatID] = Record{
		ChannelID:   channelID,
		ChannelKind: kind,
		Subscribed:  status == StatusSubscribed,
	}
	return next
}

type Subscriber struct {
	ChatID string
	Record
}

// Subscribed lists subscribed chats ordered by chat id.
func (s State) Subscribed() []Subscriber {
	out := make([]Subscriber, 0, len(s))
	for chatID, rec := range s {
		if rec.Subscribed {
			out = append(out, Subscriber{ChatID: chatID, Record: rec})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChatID < out[j].ChatID })
	return out
}
