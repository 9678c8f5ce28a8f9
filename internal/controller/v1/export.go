package v1

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/fx"

	"github.com/ie-dashboard/backend/internal/pkg/cachectrl"
	"github.com/ie-dashboard/backend/internal/pkg/rekuest"
	"github.com/ie-dashboard/backend/internal/server/svr"
	"github.com/ie-dashboard/backend/internal/service"
)

type Export struct {
	fx.In

	ViewsService    *service.Views
	SnapshotService *service.Snapshot
}

func RegisterExport(v1 *svr.V1, c Export) {
	v1.Get("/export/:domain", c.GetExport)
}

type exportQuery struct {
	Seed   uint64 `query:"seed" validate:"omitempty,min=1"`
	Format string `query:"format" validate:"omitempty,caseinsensitiveoneof=json msgpack"`
}

// GetExport downloads the raw synthetic dataset backing a domain view.
func (c *Export) GetExport(ctx *fiber.Ctx) error {
	domain := ctx.Params("domain")
	if err := rekuest.ValidDomain(ctx, domain); err != nil {
		return err
	}

	var query exportQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}
	format := strings.ToLower(query.Format)
	if format == "" {
		format = "json"
	}

	dataset, err := c.ViewsService.GetDataset(domain, query.Seed)
	if err != nil {
		return err
	}

	snapshot := c.SnapshotService.Resolve(query.Seed)

	var (
		body        []byte
		contentType string
	)
	switch format {
	case "msgpack":
		body, err = msgpack.Marshal(dataset)
		contentType = "application/x-msgpack"
	default:
		body, err = json.Marshal(dataset)
		contentType = fiber.MIMEApplicationJSONCharsetUTF8
	}
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("ie-%s-%s.%s", domain, snapshot.ID, format)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	ctx.Set(fiber.HeaderContentType, contentType)
	cachectrl.OptOut(ctx)

	return ctx.Send(body)
}
