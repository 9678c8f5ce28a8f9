package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/ie-dashboard/backend/internal/pkg/cachectrl"
	"github.com/ie-dashboard/backend/internal/pkg/rekuest"
	"github.com/ie-dashboard/backend/internal/server/svr"
	"github.com/ie-dashboard/backend/internal/service"
)

type Views struct {
	fx.In

	ViewsService *service.Views
}

func RegisterView(v1 *svr.V1, c Views) {
	v1.Get("/views", c.GetViews)
	v1.Get("/views/:domain", c.GetViewByDomain)
}

// GetViews lists the descriptors of the four domain views, in tab order.
func (c *Views) GetViews(ctx *fiber.Ctx) error {
	return ctx.JSON(c.ViewsService.Descriptors())
}

func (c *Views) GetViewByDomain(ctx *fiber.Ctx) error {
	domain := ctx.Params("domain")
	if err := rekuest.ValidDomain(ctx, domain); err != nil {
		return err
	}

	query, err := parseSnapshotQuery(ctx)
	if err != nil {
		return err
	}

	view, err := c.ViewsService.GetView(ctx.UserContext(), domain, query.Seed)
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx, view.Snapshot.GeneratedAt)

	return ctx.JSON(view)
}
