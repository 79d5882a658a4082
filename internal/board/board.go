package board

import (
	"context"
	"fmt"
	"sync"

	"logistics-backoffice/internal/apperr"
	"logistics-backoffice/internal/domain"
	"logistics-backoffice/internal/logx"
)

// State is the write state of a card.
type State int

// Card write states.
const (
	Synced State = iota
	PendingWrite
	Reverting
)

func (s State) String() string {
	switch s {
	case PendingWrite:
		return "pending_write"
	case Reverting:
		return "reverting"
	default:
		return "synced"
	}
}

type pending struct {
	state State
	prev  domain.Delivery
}

// MoveResult describes an applied drag.
type MoveResult struct {
	DeliveryID int64
	From       Column
	To         Column
	Status     domain.DeliveryStatus
	Moved      bool
}

// Board applies drag-and-drop status changes to the cached delivery list.
type Board struct {
	cache  deliveryCache
	writer statusWriter
	logger logx.Logger
	moves  outcomeCounter

	gesture sync.Mutex

	mu    sync.Mutex
	cards map[int64]pending
}

// New creates a Board. moves may be nil.
func New(cache deliveryCache, writer statusWriter, logger logx.Logger, moves outcomeCounter) *Board {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Board{
		cache:  cache,
		writer: writer,
		logger: logger,
		moves:  moves,
		cards:  make(map[int64]pending),
	}
}

// Grouped returns the current board content.
func (b *Board) Grouped() Grouped {
	return Group(b.cache.Snapshot())
}

// State reports the write state of a card.
func (b *Board) State(id int64) State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cards[id].state
}

func (b *Board) setState(id int64, s State, prev domain.Delivery) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s == Synced {
		delete(b.cards, id)
		return
	}
	b.cards[id] = pending{state: s, prev: prev}
}

// revert marks the card Reverting and returns the value held before the write.
func (b *Board) revert(id int64) domain.Delivery {
	b.mu.Lock()
	defer b.mu.Unlock()
	p := b.cards[id]
	p.state = Reverting
	b.cards[id] = p
	return p.prev
}

func (b *Board) count(outcome string) {
	if b.moves != nil {
		b.moves.WithLabelValues(outcome).Inc()
	}
}

// Move handles the end of a drag of card activeID onto overID. Dropping in
// the source column is a no-op. Otherwise the new status is written to the
// cache first, then persisted with one update; on failure the cached card
// is restored and the error returned.
func (b *Board) Move(ctx context.Context, activeID int64, overID string) (MoveResult, error) {
	b.gesture.Lock()
	defer b.gesture.Unlock()

	g := b.Grouped()
	if _, ok := g.Find(activeID); !ok {
		return MoveResult{}, apperr.ErrNotFound
	}
	from, to, ok := ResolveDrop(g, activeID, overID)
	if !ok {
		return MoveResult{}, apperr.NewValidation("over_id", "unknown drop target")
	}

	res := MoveResult{DeliveryID: activeID, From: from, To: to}
	if from == to {
		b.count("noop")
		return res, nil
	}

	prev, ok := b.cache.Get(activeID)
	if !ok {
		return MoveResult{}, apperr.ErrNotFound
	}
	status := to.Status()
	next := prev
	next.Status = status
	b.cache.Replace(next)
	b.setState(activeID, PendingWrite, prev)

	err := b.writer.UpdatePartial(ctx, domain.PartialDeliveryUpdate{ID: activeID, Status: &status})
	if err != nil {
		b.cache.Replace(b.revert(activeID))
		b.setState(activeID, Synced, domain.Delivery{})
		b.count("reverted")
		b.logger.Error("board move reverted",
			logx.Int64("delivery_id", activeID),
			logx.String("from", string(from)),
			logx.String("to", string(to)),
			logx.Err(err),
		)
		return MoveResult{}, fmt.Errorf("move delivery %d to %s: %w", activeID, to, err)
	}

	b.setState(activeID, Synced, domain.Delivery{})
	b.count("moved")
	b.logger.Info("board move applied",
		logx.Int64("delivery_id", activeID),
		logx.String("from", string(from)),
		logx.String("to", string(to)),
		logx.String("status", string(status)),
	)
	res.Status = status
	res.Moved = true
	return res, nil
}
