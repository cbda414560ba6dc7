package reply

// Discord renders embed colors as decimal RGB.
const ColorRed = 16711680

type Field struct {
	Name   string
	Value  string
	Inline bool
}

type Card struct {
	Title  string
	URL    string
	Color  int
	Fields []Field
}

type Reply struct {
	Content string
	Embeds  []Card
}

func Text(content string) Reply {
	return Reply{Content: content}
}

func WithCard(content string, card Card) Reply {
	return Reply{Content: content, Embeds: []Card{card}}
}

func (r Reply) IsCard() bool {
	return len(r.Embeds) > 0
}
