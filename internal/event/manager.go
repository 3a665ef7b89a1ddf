// internal/event/manager.go
package event

import (
	"github.com/bethropolis/resolver/internal/logger"
)

// Handler reacts to an event. It returns true when it consumed the event,
// which stops dispatch to the handlers subscribed after it.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching. Dispatch runs every
// handler on the caller's goroutine; the manager is not safe for
// concurrent use.
type Manager struct {
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.DebugTagf("event", "handler subscribed to %v", eventType)
}

// Dispatch sends an event to the handlers registered for its type, in the
// order they subscribed.
func (m *Manager) Dispatch(eventType Type, data any) {
	handlers := m.handlers[eventType]
	if len(handlers) == 0 {
		return
	}

	logger.DebugTagf("event", "dispatching %v to %d handler(s)", eventType, len(handlers))

	// A handler may subscribe during dispatch.
	handlersCopy := make([]Handler, len(handlers))
	copy(handlersCopy, handlers)

	e := Event{Type: eventType, Data: data}
	for _, handler := range handlersCopy {
		if handler(e) {
			return
		}
	}
}
