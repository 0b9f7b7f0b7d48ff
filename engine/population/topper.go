package population

import (
	"fmt"

	"github.com/Carmen-Shannon/evergreen-go/engine/model"
	"github.com/Carmen-Shannon/evergreen-go/engine/sampler"
)

// NewTopper creates a single-instance rigid population anchored to a fixed
// assembled position, typically the apex of the tree. Its scattered position
// is drawn once from the given sampler; it tumbles and settles like any other
// rigid population but always comes home to exactly the same spot with zero
// resting yaw.
//
// Parameters:
//   - name: the population identifier
//   - assembledAt: the fixed assembled position
//   - scattered: sampler for the scattered-cloud position; must be non-nil
//   - layers: the sub-meshes to draw; at least one, each with a material
//   - options: functional options passed through to the instanced population
//
// Returns:
//   - Population: the configured single-instance population
//   - error: an error if the sampler or layers are invalid
func NewTopper(name string, assembledAt [3]float32, scattered sampler.Sampler, layers []model.Model, options ...InstancedPopulationOption) (Population, error) {
	if scattered == nil {
		return nil, fmt.Errorf("population %q: scattered sampler is required", name)
	}

	sx, sy, sz := scattered.Sample()
	store := &EntityStore{entities: []Entity{{
		AssembledPosition: assembledAt,
		ScatteredPosition: [3]float32{sx, sy, sz},
		Randomness:        0.5,
		Speed:             1,
		Scale:             1,
		Color:             [3]float32{1, 1, 1},
	}}}

	return NewInstancedPopulation(name, store, layers, options...)
}
