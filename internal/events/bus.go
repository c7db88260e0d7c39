// Package events is a minimal in-process publish/subscribe bus. The
// enrollment wizard broadcasts on it so other views (the user list, the
// dashboard) can refresh without being wired to the wizard directly.
package events

import "sync"

// Topics used across the client.
const (
	TopicUserAdded    = "user-added"
	TopicOpenAddUser  = "open-add-user-modal"
	TopicSessionEnded = "session-ended"
)

// Handler receives the payload published on a topic.
type Handler func(payload any)

// Bus dispatches payloads to subscribers. Handlers run synchronously on the
// publisher's goroutine, in subscription order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers fn for topic. There is no unsubscribe — subscribers
// live as long as the application.
func (b *Bus) Subscribe(topic string, fn Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], fn)
}

// Publish delivers payload to every subscriber of topic.
func (b *Bus) Publish(topic string, payload any) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[topic]))
	copy(handlers, b.handlers[topic])
	b.mu.RUnlock()

	for _, fn := range handlers {
		fn(payload)
	}
}
