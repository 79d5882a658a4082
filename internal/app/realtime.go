package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"logistics-backoffice/internal/changefeed"
	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/gateway/geocoding"
	"logistics-backoffice/internal/gateway/routing"
	"logistics-backoffice/internal/logx"
	"logistics-backoffice/internal/repository"
	"logistics-backoffice/internal/tracking"
)

const hubBuffer = 64

// task is a long-running background loop started next to the HTTP servers.
type task struct {
	name string
	run  func(ctx context.Context) error
}

type tasksOut struct {
	dig.Out

	Tasks []task `group:"tasks,flatten"`
}

// countingPublisher counts every notification before fanning it out.
type countingPublisher struct {
	next   changefeed.Publisher
	events *prometheus.CounterVec
}

func (p countingPublisher) Publish(e changefeed.Event) {
	p.events.WithLabelValues(e.Table, string(e.Op)).Inc()
	p.next.Publish(e)
}

func registerRealtime(container *dig.Container) error {
	return provideAll(container,
		func(logger logx.Logger) *changefeed.Hub { return changefeed.NewHub(logger, hubBuffer) },
		newListener,
		func(
			deliveries *repository.DeliveryRepo,
			pings *repository.TrackingRepo,
			geo *geocoding.Geocoder,
			routes *routing.Client,
			logger logx.Logger,
		) *tracking.Tracker {
			return tracking.New(deliveries, pings, geo, routes, logger)
		},
		newTasks,
	)
}

func newListener(cfg *config.Config, hub *changefeed.Hub, logger logx.Logger, m *Metrics) *changefeed.PGListener {
	pub := countingPublisher{next: hub, events: m.ChangefeedEvents}
	return changefeed.NewPGListener(changefeed.PGDialer(cfg.DB.DSN()), pub, logger)
}

// newTasks lists the loops that keep the in-memory state in sync with the
// database: the LISTEN connection, one follower per cached table and the
// tracking view. Deliveries also reload on customer and courier changes
// because they carry the linked names.
func newTasks(
	hub *changefeed.Hub,
	listener *changefeed.PGListener,
	tracker *tracking.Tracker,
	customers *customerCollection,
	couriers *courierCollection,
	deliveries *deliveryCollection,
) tasksOut {
	follow := func(name string, fn func(context.Context, changefeed.Subscription) error, table string, ops ...changefeed.Op) task {
		return task{name: name, run: func(ctx context.Context) error {
			return fn(ctx, hub.Subscribe(table, ops...))
		}}
	}
	return tasksOut{Tasks: []task{
		{name: "changefeed listener", run: listener.Run},
		{name: "tracking", run: func(ctx context.Context) error { return tracker.Run(ctx, hub) }},
		follow("customers follower", customers.Follow, changefeed.TableCustomers),
		follow("couriers follower", couriers.Follow, changefeed.TableCouriers),
		follow("deliveries follower", deliveries.Follow, changefeed.TableDeliveries),
		follow("deliveries customer names", deliveries.Follow, changefeed.TableCustomers, changefeed.OpUpdate),
		follow("deliveries courier names", deliveries.Follow, changefeed.TableCouriers, changefeed.OpUpdate),
	}}
}
