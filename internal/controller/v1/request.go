package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ie-dashboard/backend/internal/pkg/rekuest"
)

type snapshotQuery struct {
	// Seed pins the synthetic dataset; 0 or absent serves the rotating
	// default snapshot.
	Seed uint64 `query:"seed" validate:"omitempty,min=1"`
}

func parseSnapshotQuery(ctx *fiber.Ctx) (snapshotQuery, error) {
	var query snapshotQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return query, err
	}
	return query, nil
}
