package feed

// NewsItem is a news entry attached to a chat response.
type NewsItem struct {
	Name     string `json:"news_name" yaml:"news_name"`
	Link     string `json:"news_link" yaml:"news_link"`
	ImageURL string `json:"news_image_url" yaml:"news_image_url"`
	Summary  string `json:"news_summary" yaml:"news_summary"`
	Date     string `json:"news_date" yaml:"news_date"` // "YYYY-MM-DD" or "DD MMM YYYY"
	Category string `json:"news_category,omitempty" yaml:"news_category,omitempty"`
}

// EventItem is an event entry attached to a chat response.
type EventItem struct {
	Name     string `json:"event_name" yaml:"event_name"`
	Link     string `json:"event_link" yaml:"event_link"`
	ImageURL string `json:"event_image_url" yaml:"event_image_url"`
	Summary  string `json:"event_summary" yaml:"event_summary"`
	Date     string `json:"event_date" yaml:"event_date"`
	Location string `json:"event_location" yaml:"event_location"`
	Upcoming bool   `json:"is_upcoming,omitempty" yaml:"is_upcoming,omitempty"`
}

// Citation is a source link attached to a chat response.
type Citation struct {
	URL   string `json:"url" yaml:"url"`
	Title string `json:"title" yaml:"title"`
}

// SecondaryOutput is the rich attachment block of a chat message.
type SecondaryOutput struct {
	Events    []EventItem `json:"events,omitempty" yaml:"events,omitempty"`
	News      []NewsItem  `json:"news,omitempty" yaml:"news,omitempty"`
	Citations []Citation  `json:"citations,omitempty" yaml:"citations,omitempty"`
}

// CardKind distinguishes the carousels a card belongs to.
type CardKind int

const (
	CardNews CardKind = iota
	CardEvent
)

func (k CardKind) String() string {
	if k == CardEvent {
		return "event"
	}
	return "news"
}

// Card is the kind-independent form a carousel renders.
type Card struct {
	Kind     CardKind
	Title    string
	Summary  string
	Link     string
	ImageURL string
	// Date is already formatted for display; empty if unparseable.
	Date string
	// Tag is the news category or the event location.
	Tag      string
	Upcoming bool
}

// NewsCards converts the news items to cards, preserving order.
func (o *SecondaryOutput) NewsCards() []Card {
	if o == nil {
		return nil
	}
	cards := make([]Card, 0, len(o.News))
	for _, n := range o.News {
		cards = append(cards, Card{
			Kind:     CardNews,
			Title:    n.Name,
			Summary:  n.Summary,
			Link:     n.Link,
			ImageURL: n.ImageURL,
			Date:     FormatDate(n.Date),
			Tag:      n.Category,
		})
	}
	return cards
}

// EventCards converts the event items to cards, preserving order.
func (o *SecondaryOutput) EventCards() []Card {
	if o == nil {
		return nil
	}
	cards := make([]Card, 0, len(o.Events))
	for _, e := range o.Events {
		cards = append(cards, Card{
			Kind:     CardEvent,
			Title:    e.Name,
			Summary:  e.Summary,
			Link:     e.Link,
			ImageURL: e.ImageURL,
			Date:     FormatDate(e.Date),
			Tag:      e.Location,
			Upcoming: e.Upcoming,
		})
	}
	return cards
}
