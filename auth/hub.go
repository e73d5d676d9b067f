package auth

import "sync"

// Event names published on the Hub.
const (
	EventSignIn  = "signIn"
	EventSignOut = "signOut"
)

// Event carries the auth state change. Attributes hold provider claims
// (email, name, picture) on sign-in and are nil on sign-out.
type Event struct {
	Name       string
	Username   string
	Attributes map[string]string
}

// Hub is the process-wide auth event bus. Subscribe returns an unsubscribe
// func that must be called on teardown; publishing after unsubscribe never
// reaches the listener.
type Hub struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func(Event)
}

func NewHub() *Hub {
	return &Hub{listeners: make(map[int]func(Event))}
}

// Subscribe registers a listener and returns its unsubscribe func.
func (h *Hub) Subscribe(fn func(Event)) (unsubscribe func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.listeners[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// Publish delivers the event to every current listener, synchronously and
// in no particular order.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	fns := make([]func(Event), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
