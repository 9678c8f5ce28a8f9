package refreshwkr

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/ie-dashboard/backend/internal/app/appconfig"
	"github.com/ie-dashboard/backend/internal/constant"
	"github.com/ie-dashboard/backend/internal/model"
	"github.com/ie-dashboard/backend/internal/pkg/async"
	"github.com/ie-dashboard/backend/internal/service"
)

type WorkerDeps struct {
	fx.In
	SnapshotService *service.Snapshot
	ViewsService    *service.Views
}

type Worker struct {
	// count counts rotations the worker has completed so far
	count int

	// interval describes the time in-between snapshot rotations
	interval time.Duration

	// deps
	WorkerDeps
}

func Start(conf *appconfig.Config, deps WorkerDeps) {
	if !conf.WorkerEnabled {
		log.Info().Msg("snapshot refresh worker is disabled")
		return
	}
	(&Worker{
		interval:   conf.WorkerInterval,
		WorkerDeps: deps,
	}).do()
}

func (w *Worker) do() {
	go func() {
		for {
			time.Sleep(w.interval)

			snapshot := w.SnapshotService.Rotate("worker")

			// prewarm the view caches so no request pays for the rotation
			_, err := async.Map(constant.Domains, len(constant.Domains), func(domain string) (*model.View, error) {
				return w.ViewsService.GetView(context.Background(), domain, 0)
			})
			if err != nil {
				log.Error().Err(err).Msg("failed to prewarm views after rotation")
			}

			w.count++

			log.Info().
				Int("count", w.count).
				Str("snapshotId", snapshot.ID).
				Msg("rotated default snapshot")
		}
	}()
}

func (w *Worker) Count() int {
	return w.count
}
