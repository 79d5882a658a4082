// Package tracking maintains the live map of shipped, tracking-enabled
// deliveries: their latest courier positions, geocoded endpoints and routes.
package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"logistics-backoffice/internal/changefeed"
	"logistics-backoffice/internal/domain"
	"logistics-backoffice/internal/gateway/routing"
	"logistics-backoffice/internal/logx"
)

// Tracker keeps the tracking state in memory and rebuilds it on changes.
type Tracker struct {
	deliveries deliveryFinder
	pings      pingReader
	geo        geocoder
	router     router
	logger     logx.Logger

	load sync.Mutex

	mu        sync.RWMutex
	loading   bool
	active    []domain.Delivery
	activeIDs map[int64]struct{}
	positions map[int64]domain.TrackingPing
	places    map[string]domain.Point
	routes    map[int64]routing.Route
	version   uint64
	watchers  map[chan struct{}]struct{}
}

// New creates a Tracker. geo and r may be nil, which disables geocoding
// and routing respectively.
func New(deliveries deliveryFinder, pings pingReader, geo geocoder, r router, logger logx.Logger) *Tracker {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Tracker{
		deliveries: deliveries,
		pings:      pings,
		geo:        geo,
		router:     r,
		logger:     logger,
		activeIDs:  make(map[int64]struct{}),
		positions:  make(map[int64]domain.TrackingPing),
		places:     make(map[string]domain.Point),
		routes:     make(map[int64]routing.Route),
		watchers:   make(map[chan struct{}]struct{}),
	}
}

// Run loads the view, then follows ping inserts and delivery changes until
// ctx is done. A delivery change triggers a full reload. Reloads run on
// their own goroutine so pings keep flowing while addresses are geocoded.
func (t *Tracker) Run(ctx context.Context, feed changefeed.Subscriber) error {
	pingSub := feed.Subscribe(changefeed.TableTrackingPings, changefeed.OpInsert)
	defer pingSub.Close()
	deliverySub := feed.Subscribe(changefeed.TableDeliveries)
	defer deliverySub.Close()

	ctx, cancel := context.WithCancel(ctx)
	reload := make(chan struct{}, 1)
	reload <- struct{}{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		t.reloadLoop(ctx, reload)
	}()
	defer func() {
		cancel()
		<-done
	}()

	pings, changes := pingSub.Events(), deliverySub.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-pings:
			if !ok {
				return nil
			}
			t.onPing(e)
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			drain(changes)
			select {
			case reload <- struct{}{}:
			default:
			}
		}
	}
}

func (t *Tracker) reloadLoop(ctx context.Context, reload <-chan struct{}) {
	for first := true; ; first = false {
		select {
		case <-ctx.Done():
			return
		case <-reload:
		}
		err := t.Load(ctx)
		switch {
		case err == nil || ctx.Err() != nil:
		case first:
			t.logger.Error("tracking initial load failed", logx.Err(err))
		default:
			t.logger.Warn("tracking reload failed", logx.Err(err))
		}
	}
}

func drain(ch <-chan changefeed.Event) {
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

type pingPayload struct {
	ID         int64     `json:"id"`
	DeliveryID int64     `json:"delivery_id"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	RecordedAt time.Time `json:"recorded_at"`
}

func (t *Tracker) onPing(e changefeed.Event) {
	var p pingPayload
	if err := json.Unmarshal(e.Payload, &p); err != nil || p.DeliveryID == 0 {
		t.logger.Warn("tracking bad ping payload", logx.Int64("id", e.ID), logx.Err(err))
		return
	}
	t.ApplyPing(domain.TrackingPing{ID: p.ID, DeliveryID: p.DeliveryID, Lat: p.Lat, Lng: p.Lng, At: p.RecordedAt})
}

// ApplyPing records p as the current position of its delivery unless a
// newer sample is already known. Pings for deliveries outside the tracked
// set are ignored, except while a load is fetching the new set.
func (t *Tracker) ApplyPing(p domain.TrackingPing) {
	t.mu.Lock()
	if _, active := t.activeIDs[p.DeliveryID]; !active && !t.loading {
		t.mu.Unlock()
		return
	}
	if cur, ok := t.positions[p.DeliveryID]; ok && cur.At.After(p.At) {
		t.mu.Unlock()
		return
	}
	t.positions[p.DeliveryID] = p
	t.mu.Unlock()
	t.changed()
}

// Load fetches the tracked deliveries and their latest pings, geocodes
// addresses without known coordinates and computes missing routes.
func (t *Tracker) Load(ctx context.Context) error {
	t.load.Lock()
	defer t.load.Unlock()

	t.setLoading(true)
	defer t.setLoading(false)

	enabled := true
	ds, err := t.deliveries.Find(ctx, domain.DeliveryFilter{
		Statuses:        []domain.DeliveryStatus{domain.StatusShipped},
		TrackingEnabled: &enabled,
	})
	if err != nil {
		return fmt.Errorf("load tracked deliveries: %w", err)
	}
	ids := make([]int64, len(ds))
	for i, d := range ds {
		ids[i] = d.ID
	}
	latest, err := t.pings.LatestFor(ctx, ids)
	if err != nil {
		return fmt.Errorf("load latest pings: %w", err)
	}

	t.mu.Lock()
	t.setActive(ds)
	for id, p := range latest {
		if cur, ok := t.positions[id]; !ok || !cur.At.After(p.At) {
			t.positions[id] = p
		}
	}
	t.mu.Unlock()

	for _, d := range ds {
		if err := ctx.Err(); err != nil {
			return err
		}
		t.resolve(ctx, deref(d.Origin))
		if _, ok := d.DestinationPoint(); !ok {
			t.resolve(ctx, deref(d.Destination))
		}
	}
	for _, d := range ds {
		if err := ctx.Err(); err != nil {
			return err
		}
		t.ensureRoute(ctx, d)
	}

	t.changed()
	t.logger.Info("tracking view loaded", logx.Int("deliveries", len(ds)), logx.Int("positions", len(latest)))
	return nil
}

func (t *Tracker) setLoading(v bool) {
	t.mu.Lock()
	t.loading = v
	t.mu.Unlock()
}

// setActive replaces the tracked set and forgets positions, routes and
// places of deliveries that left it, so a delivery coming back is routed
// afresh. Requires t.mu held.
func (t *Tracker) setActive(ds []domain.Delivery) {
	t.active = ds
	t.loading = false
	t.activeIDs = make(map[int64]struct{}, len(ds))
	addresses := make(map[string]struct{}, 2*len(ds))
	for _, d := range ds {
		t.activeIDs[d.ID] = struct{}{}
		addresses[deref(d.Origin)] = struct{}{}
		addresses[deref(d.Destination)] = struct{}{}
	}
	for id := range t.positions {
		if _, ok := t.activeIDs[id]; !ok {
			delete(t.positions, id)
		}
	}
	for id := range t.routes {
		if _, ok := t.activeIDs[id]; !ok {
			delete(t.routes, id)
		}
	}
	for a := range t.places {
		if _, ok := addresses[a]; !ok {
			delete(t.places, a)
		}
	}
}

// resolve geocodes address once. Failures are logged and skipped.
func (t *Tracker) resolve(ctx context.Context, address string) {
	if address == "" || t.geo == nil {
		return
	}
	t.mu.RLock()
	_, known := t.places[address]
	t.mu.RUnlock()
	if known {
		return
	}
	p, err := t.geo.Geocode(ctx, address)
	if err != nil {
		t.logger.Warn("tracking geocode skipped", logx.String("address", address), logx.Err(err))
		return
	}
	if p == nil {
		t.logger.Debug("tracking address not found", logx.String("address", address))
		return
	}
	t.mu.Lock()
	t.places[address] = *p
	t.mu.Unlock()
}

// ensureRoute draws the route of d once, from the live position if known
// or else the origin, to the destination.
func (t *Tracker) ensureRoute(ctx context.Context, d domain.Delivery) {
	if t.router == nil {
		return
	}
	t.mu.RLock()
	_, done := t.routes[d.ID]
	start, okStart := t.startOf(d)
	end, okEnd := t.endOf(d)
	t.mu.RUnlock()
	if done || !okStart || !okEnd {
		return
	}
	r, err := t.router.Route(ctx, start, end)
	if err != nil {
		t.logger.Warn("tracking route skipped", logx.Int64("delivery_id", d.ID), logx.Err(err))
		return
	}
	t.mu.Lock()
	if _, exists := t.routes[d.ID]; !exists {
		t.routes[d.ID] = *r
	}
	t.mu.Unlock()
}

// startOf and endOf require t.mu held.
func (t *Tracker) startOf(d domain.Delivery) (domain.Point, bool) {
	if p, ok := t.positions[d.ID]; ok {
		return p.Point(), true
	}
	p, ok := t.places[deref(d.Origin)]
	return p, ok
}

func (t *Tracker) endOf(d domain.Delivery) (domain.Point, bool) {
	if p, ok := d.DestinationPoint(); ok {
		return p, true
	}
	p, ok := t.places[deref(d.Destination)]
	return p, ok
}

// View renders the map, optionally restricted to one courier. Filtering
// only affects what is rendered.
func (t *Tracker) View(courierID *int64) View {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v := View{
		Version:    t.version,
		Deliveries: []Item{},
		Markers:    []Marker{},
		Routes:     []RouteView{},
	}
	for _, d := range t.active {
		if courierID != nil && d.CourierID != *courierID {
			continue
		}
		ping, live := t.positions[d.ID]
		v.Deliveries = append(v.Deliveries, Item{
			DeliveryID:  d.ID,
			OrderNumber: d.OrderNumber,
			CourierID:   d.CourierID,
			CourierName: d.CourierName,
			Description: d.Description,
			Origin:      deref(d.Origin),
			Destination: deref(d.Destination),
			Live:        live,
		})

		if live {
			at := ping.At
			name := d.CourierName
			if name == "" {
				name = "Motorista"
			}
			v.Markers = append(v.Markers, Marker{
				Kind: MarkerVehicle, DeliveryID: d.ID, Position: ping.Point(), Label: name, UpdatedAt: &at,
			})
			v.extend(ping.Point())
		} else if p, ok := t.places[deref(d.Origin)]; ok {
			v.Markers = append(v.Markers, Marker{
				Kind: MarkerOrigin, DeliveryID: d.ID, Position: p, Label: deref(d.Origin),
			})
			v.extend(p)
		}
		if p, ok := t.endOf(d); ok {
			v.Markers = append(v.Markers, Marker{
				Kind: MarkerDestination, DeliveryID: d.ID, Position: p, Label: deref(d.Destination),
			})
			v.extend(p)
		}
		if r, ok := t.routes[d.ID]; ok {
			v.Routes = append(v.Routes, RouteView{
				DeliveryID: d.ID,
				Distance:   r.DistanceLabel(),
				Duration:   r.DurationLabel(),
				Path:       r.Path,
			})
		}
	}
	return v
}

// Watch returns a channel signalled after every state change and a func
// to stop watching. Signals coalesce.
func (t *Tracker) Watch() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	t.mu.Lock()
	t.watchers[ch] = struct{}{}
	t.mu.Unlock()
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.watchers, ch)
			t.mu.Unlock()
		})
	}
}

func (t *Tracker) changed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.version++
	for ch := range t.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// ParseCourier parses an optional courier filter; empty or "all" means none.
func ParseCourier(s string) (*int64, error) {
	if s == "" || s == "all" || s == "todos" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid courier id %q", s)
	}
	return &id, nil
}
