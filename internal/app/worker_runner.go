package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/logx"
	"logistics-backoffice/internal/repository"
	"logistics-backoffice/internal/service/pings"
	"logistics-backoffice/internal/transport/kafka"
)

// WorkerRunner runs the courier pings consumer
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun consumes until the container context is done. It panics on any
// error other than cancellation.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		repository.NewDeliveryRepo,
		repository.NewTrackingRepo,
		func(d *repository.DeliveryRepo, t *repository.TrackingRepo, logger logx.Logger) *pings.Processor {
			return pings.NewProcessor(d, t, logger)
		},
		func(p *pings.Processor) kafka.HandleFunc {
			return makePingsKafka(p, pingHandleTimeout)
		},
		newPingsConsumer,
	)
}

func newPingsConsumer(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
	k := cfg.Kafka
	return kafka.NewConsumer(logger, k.Brokers, k.GroupID, k.PingsTopic, h)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	pool *pgxpool.Pool,
	logger logx.Logger,
	consumer *kafka.Consumer,
) error {
	if consumer == nil {
		return fmt.Errorf("kafka consumer is nil: worker container misconfigured")
	}
	defer closeWorker(pool, logger, consumer)

	logger.Info("pings worker started")
	return consumer.Run(ctx)
}

func closeWorker(pool *pgxpool.Pool, logger logx.Logger, kafkaConsumer *kafka.Consumer) {
	if kafkaConsumer != nil {
		if err := kafkaConsumer.Close(); err != nil {
			logger.Error("kafka close error", logx.Err(err))
		}
	}
	if pool != nil {
		pool.Close()
	}
	_ = logger.Sync()
}
