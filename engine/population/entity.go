package population

import (
	"fmt"

	"github.com/Carmen-Shannon/evergreen-go/engine/sampler"
	"github.com/chewxy/math32"
)

// Entity is the per-member morph data for one population member. Both
// endpoint positions are sampled once at construction; per-frame state is
// derived from them and never written back.
type Entity struct {
	// AssembledPosition is the entity's home in the assembled arrangement.
	AssembledPosition [3]float32

	// ScatteredPosition is the entity's home in the scattered cloud.
	ScatteredPosition [3]float32

	// Randomness is a per-entity uniform draw in [0, 1) used to decorrelate
	// jitter and twinkle between neighbors.
	Randomness float32

	// Speed scales the entity's animation rates (tumble, twinkle, drift).
	Speed float32

	// Scale is the entity's base size multiplier.
	Scale float32

	// Phase offsets the entity's periodic animation in radians.
	Phase float32

	// RestYaw is the Y rotation the entity settles into once assembled.
	// Only meaningful for rigid populations.
	RestYaw float32

	// Color is the entity's RGB tint, drawn from the population palette.
	Color [3]float32
}

// EntityStore holds the immutable entity set of one population. Built once
// from a sampler pair; callers must treat the returned entities as read-only.
type EntityStore struct {
	entities []Entity
}

// NewEntityStore samples count entities from the given assembled and
// scattered samplers.
//
// Parameters:
//   - count: the number of entities to create; must be positive
//   - assembled: sampler for assembled-arrangement positions
//   - scattered: sampler for scattered-cloud positions
//   - options: functional options for speed/scale ranges, palette, and seeding
//
// Returns:
//   - *EntityStore: the populated store
//   - error: an error if count is non-positive or a sampler is nil
func NewEntityStore(count int, assembled, scattered sampler.Sampler, options ...EntityStoreOption) (*EntityStore, error) {
	if count <= 0 {
		return nil, fmt.Errorf("population: entity count must be positive, got %d", count)
	}
	if assembled == nil || scattered == nil {
		return nil, fmt.Errorf("population: both samplers are required")
	}

	cfg := applyEntityStoreOptions(options)

	entities := make([]Entity, count)
	for i := range entities {
		ax, ay, az := assembled.Sample()
		sx, sy, sz := scattered.Sample()

		e := Entity{
			AssembledPosition: [3]float32{ax, ay, az},
			ScatteredPosition: [3]float32{sx, sy, sz},
			Randomness:        cfg.rng.Float32(),
			Speed:             cfg.speedMin + cfg.rng.Float32()*(cfg.speedMax-cfg.speedMin),
			Scale:             cfg.scaleMin + cfg.rng.Float32()*(cfg.scaleMax-cfg.scaleMin),
			Phase:             cfg.rng.Float32() * 2 * math32.Pi,
			RestYaw:           cfg.rng.Float32() * 2 * math32.Pi,
			Color:             [3]float32{1, 1, 1},
		}
		if len(cfg.palette) > 0 {
			c := cfg.palette[i%len(cfg.palette)]
			e.Color = [3]float32{float32(c.R), float32(c.G), float32(c.B)}
		}
		entities[i] = e
	}

	return &EntityStore{entities: entities}, nil
}

// Count returns the number of entities in the store.
//
// Returns:
//   - int: the entity count
func (s *EntityStore) Count() int {
	return len(s.entities)
}

// Entities returns the entity slice. The slice is shared, not copied; callers
// must not mutate it.
//
// Returns:
//   - []Entity: the entities in stable iteration order
func (s *EntityStore) Entities() []Entity {
	return s.entities
}
