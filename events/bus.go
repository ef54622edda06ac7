package events

// Handler processes a single event during synchronous dispatch
type Handler func(Event)

// Subscription identifies one registration for later removal
type Subscription struct {
	eventType EventType
	id        uint64
}

type entry struct {
	id      uint64
	handler Handler
}

// Bus dispatches events to subscribers synchronously, in registration
// order. It is confined to the frame-tick call chain: all layers publish
// and subscribe from the single update goroutine, so no locking is needed.
//
// Mutation-during-dispatch policy: Publish iterates a snapshot of the
// handler list taken when the publish starts. A handler unsubscribed by
// another handler mid-dispatch still receives the in-flight event; a
// handler subscribed mid-dispatch only sees later publishes. Re-entrant
// Publish from inside a handler is permitted
type Bus struct {
	handlers map[EventType][]entry
	nextID   uint64
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]entry),
	}
}

// Subscribe registers a handler for one event type and returns the
// subscription to pass to Unsubscribe
func (b *Bus) Subscribe(t EventType, h Handler) Subscription {
	b.nextID++
	id := b.nextID
	b.handlers[t] = append(b.handlers[t], entry{id: id, handler: h})
	return Subscription{eventType: t, id: id}
}

// Unsubscribe removes the exact registration. Removing an already-removed
// subscription is a no-op
func (b *Bus) Unsubscribe(sub Subscription) {
	old := b.handlers[sub.eventType]
	if len(old) == 0 {
		return
	}
	// Copy-on-write keeps in-flight Publish snapshots intact
	filtered := make([]entry, 0, len(old))
	for _, e := range old {
		if e.id != sub.id {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) == len(old) {
		return
	}
	if len(filtered) == 0 {
		delete(b.handlers, sub.eventType)
		return
	}
	b.handlers[sub.eventType] = filtered
}

// Publish invokes all handlers registered for the event's type at the
// moment Publish starts, in registration order. Publishing an event with
// no subscribers is a no-op
func (b *Bus) Publish(ev Event) {
	snapshot := b.handlers[ev.Type]
	for _, e := range snapshot {
		e.handler(ev)
	}
}

// SubscriberCount returns the number of registrations for an event type
func (b *Bus) SubscriberCount(t EventType) int {
	return len(b.handlers[t])
}

// Clear removes all registrations
func (b *Bus) Clear() {
	b.handlers = make(map[EventType][]entry)
}
