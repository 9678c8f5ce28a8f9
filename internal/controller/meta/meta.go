package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"github.com/ie-dashboard/backend/internal/pkg/bininfo"
	"github.com/ie-dashboard/backend/internal/server/svr"
	"github.com/ie-dashboard/backend/internal/service"
)

type Meta struct {
	fx.In

	SnapshotService *service.Snapshot
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	meta.Get("/health", cache.New(cache.Config{
		// cache it for a second to mitigate potential DDoS
		Expiration: time.Second,
	}), c.Health)
}

func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

func (c *Meta) Health(ctx *fiber.Ctx) error {
	snapshot := c.SnapshotService.Current()

	return ctx.JSON(fiber.Map{
		"status":   "ok",
		"snapshot": snapshot.ID,
	})
}
