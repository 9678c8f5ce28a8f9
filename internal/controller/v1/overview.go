package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/ie-dashboard/backend/internal/pkg/cachectrl"
	"github.com/ie-dashboard/backend/internal/server/svr"
	"github.com/ie-dashboard/backend/internal/service"
)

type Overview struct {
	fx.In

	OverviewService *service.Overview
}

func RegisterOverview(v1 *svr.V1, c Overview) {
	v1.Get("/overview", c.GetOverview)
}

func (c *Overview) GetOverview(ctx *fiber.Ctx) error {
	query, err := parseSnapshotQuery(ctx)
	if err != nil {
		return err
	}

	overview, err := c.OverviewService.GetOverview(ctx.UserContext(), query.Seed)
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx, overview.Snapshot.GeneratedAt)

	return ctx.JSON(overview)
}
