package main

import (
	"context"
	"os/signal"
	"syscall"

	"logistics-backoffice/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	container := app.NewContainerBuilder().MustBuildWorker(ctx)
	app.NewWorkerRunner().MustRun(container)
}
