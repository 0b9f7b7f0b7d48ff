package scene

import (
	"github.com/Carmen-Shannon/evergreen-go/engine/population"
)

// SceneBuilderOption is a functional option for configuring a Scene at creation.
type SceneBuilderOption func(*scene)

// WithActive sets the scene's initial active state.
//
// Parameters:
//   - active: true to mark the scene active for rendering
//
// Returns:
//   - SceneBuilderOption: the configured option function
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithAssembled sets the scene's initial morph goal. Populations added later
// inherit it; populations passed via WithPopulations receive it when the
// option runs.
//
// Parameters:
//   - assembled: true to start morphing toward the assembled arrangement
//
// Returns:
//   - SceneBuilderOption: the configured option function
func WithAssembled(assembled bool) SceneBuilderOption {
	return func(s *scene) {
		s.assembled = assembled
		for _, p := range s.populations {
			p.SetAssembled(assembled)
		}
	}
}

// WithPopulations registers populations in the given order. Order is the draw
// order; add opaque populations before additive ones.
//
// Parameters:
//   - pops: the populations to register; nils are skipped
//
// Returns:
//   - SceneBuilderOption: the configured option function
func WithPopulations(pops ...population.Population) SceneBuilderOption {
	return func(s *scene) {
		for _, p := range pops {
			if p == nil {
				continue
			}
			p.SetAssembled(s.assembled)
			s.populations = append(s.populations, p)
		}
	}
}

// WithComputeWorkers overrides the number of goroutines in the scene's
// compute pool. Defaults to NumCPU-1 with a floor of 1.
//
// Parameters:
//   - workers: the worker count; values below 1 are clamped to 1
//
// Returns:
//   - SceneBuilderOption: the configured option function
func WithComputeWorkers(workers int) SceneBuilderOption {
	return func(s *scene) {
		s.computeWorkers = max(workers, 1)
	}
}
