package animals

import (
	"sync"

	"github.com/google/uuid"
)

// Callback recibe el modelo que cambió.
type Callback func(Animal)

// Subscription identifica un callback registrado en un modelo.
type Subscription struct {
	id  string
	hub *hub
}

// Unsubscribe saca el callback de la lista. Devuelve false si ya no estaba.
func (s *Subscription) Unsubscribe() bool {
	if s == nil || s.hub == nil {
		return false
	}
	return s.hub.remove(s.id)
}

type subscriber struct {
	id string
	fn Callback
}

// hub notifica en orden de suscripción, de forma síncrona y sin batching.
type hub struct {
	mu   sync.Mutex
	subs []subscriber
}

func (h *hub) add(fn Callback) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.NewString()
	h.subs = append(h.subs, subscriber{id: id, fn: fn})
	return &Subscription{id: id, hub: h}
}

func (h *hub) remove(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, s := range h.subs {
		if s.id == id {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			return true
		}
	}
	return false
}

func (h *hub) len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *hub) notify(a Animal) {
	// Copia para que un callback pueda desuscribirse sin deadlock.
	h.mu.Lock()
	subs := make([]subscriber, len(h.subs))
	copy(subs, h.subs)
	h.mu.Unlock()

	for _, s := range subs {
		if s.fn != nil {
			s.fn(a)
		}
	}
}
