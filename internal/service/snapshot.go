package service

import (
	"strconv"
	"time"

	"github.com/dchest/uniuri"

	"github.com/ie-dashboard/backend/internal/app/appconfig"
	"github.com/ie-dashboard/backend/internal/model"
	"github.com/ie-dashboard/backend/internal/pkg/cache"
	"github.com/ie-dashboard/backend/internal/pkg/observability"
)

const snapshotIDLen = 12

type Snapshot struct {
	conf *appconfig.Config

	current *cache.Singular[model.Snapshot]
}

func NewSnapshot(conf *appconfig.Config) *Snapshot {
	s := &Snapshot{
		conf:    conf,
		current: cache.NewSingular[model.Snapshot]("currentSnapshot"),
	}
	s.Rotate("startup")
	return s
}

// Current returns the default snapshot served when no seed is requested.
func (s *Snapshot) Current() model.Snapshot {
	var snapshot model.Snapshot
	if err := s.current.Get(&snapshot); err != nil {
		return s.Rotate("lazy")
	}
	return snapshot
}

// Rotate replaces the default snapshot with a freshly seeded one. With
// DefaultSeed configured the rotation is a no-op on the data itself and only
// renews the snapshot metadata.
func (s *Snapshot) Rotate(trigger string) model.Snapshot {
	seed := s.conf.DefaultSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	snapshot := model.Snapshot{
		ID:          uniuri.NewLen(snapshotIDLen),
		Seed:        seed,
		GeneratedAt: time.Now(),
	}
	_ = s.current.Set(snapshot, 0)

	observability.SnapshotRefreshCount.WithLabelValues(trigger).Inc()

	return snapshot
}

// Resolve maps a request's seed parameter to a snapshot: zero means the
// current default, anything else pins a reproducible generation.
func (s *Snapshot) Resolve(seed uint64) model.Snapshot {
	if seed == 0 {
		return s.Current()
	}
	return model.Snapshot{
		ID:          "seed-" + strconv.FormatUint(seed, 10),
		Seed:        seed,
		GeneratedAt: time.Now(),
	}
}
