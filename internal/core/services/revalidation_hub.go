package services

import (
	"sync"

	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
)

// subscriberBuffer is how many stale paths a subscriber may fall behind before events are dropped.
const subscriberBuffer = 32

// revalidationHub fans stale-view paths out to SSE subscribers.
type revalidationHub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan string
}

func NewRevalidationHub() portssvc.RevalidationHub {
	return &revalidationHub{subs: make(map[int]chan string)}
}

var _ portssvc.RevalidationHub = (*revalidationHub)(nil)

// Publish never blocks: a subscriber with a full buffer misses the event.
func (h *revalidationHub) Publish(paths ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		for _, p := range paths {
			select {
			case ch <- p:
			default:
			}
		}
	}
}

func (h *revalidationHub) Subscribe() (<-chan string, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan string, subscriberBuffer)
	h.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}
