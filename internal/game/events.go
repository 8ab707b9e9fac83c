package game

// EventType identifies events published by a session.
type EventType int

const (
	EventRoundStarted EventType = iota
	EventAnswerJudged
	EventSessionComplete
	EventNotePlayed
)

// Event carries what happened during a session. Fields are filled
// per type: Correct only for EventAnswerJudged, Note for EventNotePlayed.
type Event struct {
	Type    EventType
	Mode    Mode
	Correct bool
	Note    string
}

type eventHandler func(Event)

// EventBus fans events out to registered handlers, synchronously, in
// registration order. All dispatch happens on the frame loop.
type EventBus struct {
	handlers map[EventType][]eventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[EventType][]eventHandler)}
}

func (b *EventBus) Subscribe(t EventType, h eventHandler) {
	b.handlers[t] = append(b.handlers[t], h)
}

func (b *EventBus) Publish(ev Event) {
	for _, h := range b.handlers[ev.Type] {
		h(ev)
	}
}
