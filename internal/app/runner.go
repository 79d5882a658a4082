package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"
	"golang.org/x/sync/errgroup"

	"logistics-backoffice/internal/changefeed"
	"logistics-backoffice/internal/logx"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the API: HTTP servers plus the background sync loops.
type Runner struct {
	runFn  func(*dig.Container) error
	fatalf func(string, ...interface{})
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run, fatalf: log.Fatalf}
}

// MustRun runs the container until its context is done. Cancellation and
// startup timeouts exit quietly; any other error is fatal.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := containerLogger(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		_ = logger.Sync()
		r.fatalf("run error: %v", err)
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	var logger logx.Logger = logx.Nop()
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil {
		log.Printf("logger unavailable: %v", err)
	}
	return logger
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

type runIn struct {
	dig.In

	Ctx    context.Context
	Logger logx.Logger
	Pool   *pgxpool.Pool
	Hub    *changefeed.Hub
	Server *http.Server
	Admin  *http.Server `name:"admin_server" optional:"true"`
	Tasks  []task       `group:"tasks"`
}

func appRun(in runIn) error {
	defer closeResources(in.Pool, in.Hub, in.Logger)

	servers := []*http.Server{in.Server}
	if in.Admin != nil {
		servers = append(servers, in.Admin)
	}

	g, ctx := errgroup.WithContext(in.Ctx)
	for _, t := range in.Tasks {
		t := t
		g.Go(func() error { return runTask(ctx, in.Logger, t) })
	}
	for _, srv := range servers {
		srv := srv
		g.Go(func() error { return serve(srv, in.Logger) })
	}
	g.Go(func() error {
		<-ctx.Done()
		in.Logger.Info("shutting down logistics back-office")
		for _, srv := range servers {
			gracefulShutdown(srv, in.Logger, shutdownTimeout)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return in.Ctx.Err()
}

func runTask(ctx context.Context, logger logx.Logger, t task) error {
	logger.Debug("background task started", logx.String("task", t.name))
	err := t.run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", t.name, err)
	}
	return nil
}

func serve(srv *http.Server, logger logx.Logger) error {
	logger.Info("http server listening", logx.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}
	return nil
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.String("addr", srv.Addr), logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, hub *changefeed.Hub, logger logx.Logger) {
	if hub != nil {
		hub.Close()
	}
	if pool != nil {
		pool.Close()
	}
	if err := logger.Sync(); err != nil {
		logger.Debug("logger sync failed", logx.Err(err))
	}
}
