package changefeed

import (
	"sync"

	"logistics-backoffice/internal/logx"
)

const defaultBuffer = 64

// Hub is an in-process fan-out of change events. Publish never blocks:
// a subscriber whose buffer is full misses the event.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*subscription]struct{}
	buffer int
	logger logx.Logger
	closed bool
}

// NewHub returns a Hub whose subscriptions buffer up to buffer events.
func NewHub(logger logx.Logger, buffer int) *Hub {
	if logger == nil {
		logger = logx.Nop()
	}
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{
		subs:   make(map[*subscription]struct{}),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe registers interest in events of table. With no ops every
// operation matches.
func (h *Hub) Subscribe(table string, ops ...Op) Subscription {
	s := &subscription{
		hub:   h,
		table: table,
		ops:   make(map[Op]struct{}, len(ops)),
		ch:    make(chan Event, h.buffer),
	}
	for _, op := range ops {
		s.ops[op] = struct{}{}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(s.ch)
		s.done = true
		return s
	}
	h.subs[s] = struct{}{}
	return s
}

// Publish delivers e to every matching subscriber.
func (h *Hub) Publish(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs {
		if !s.matches(e) {
			continue
		}
		select {
		case s.ch <- e:
		default:
			h.logger.Warn("changefeed subscriber lagging, event dropped",
				logx.String("table", e.Table),
				logx.String("op", string(e.Op)),
				logx.Int64("id", e.ID),
			)
		}
	}
}

// Len reports the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close ends every subscription. Later subscriptions are closed immediately.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for s := range h.subs {
		delete(h.subs, s)
		s.done = true
		close(s.ch)
	}
}

func (h *Hub) remove(s *subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s.done {
		return
	}
	s.done = true
	delete(h.subs, s)
	close(s.ch)
}

type subscription struct {
	hub   *Hub
	table string
	ops   map[Op]struct{}
	ch    chan Event
	done  bool // guarded by hub.mu
}

func (s *subscription) Events() <-chan Event { return s.ch }

func (s *subscription) Close() { s.hub.remove(s) }

func (s *subscription) matches(e Event) bool {
	if s.table != e.Table {
		return false
	}
	if len(s.ops) == 0 {
		return true
	}
	_, ok := s.ops[e.Op]
	return ok
}
