package population

import (
	"github.com/Carmen-Shannon/evergreen-go/engine/progress"
)

// InstancedPopulationOption is a functional option for configuring an instanced population.
type InstancedPopulationOption func(*instancedPopulation)

// WithInstancedPipelineKey sets the render pipeline key the population draws
// with. Defaults to "instanced".
//
// Parameters:
//   - key: the registered pipeline key
//
// Returns:
//   - InstancedPopulationOption: the configured option function
func WithInstancedPipelineKey(key string) InstancedPopulationOption {
	return func(p *instancedPopulation) {
		p.pipelineKey = key
	}
}

// WithInstancedTimeConstant sets the morph damping time constant in seconds.
//
// Parameters:
//   - tau: the time constant; must be positive
//
// Returns:
//   - InstancedPopulationOption: the configured option function
func WithInstancedTimeConstant(tau float32) InstancedPopulationOption {
	return func(p *instancedPopulation) {
		p.progressOptions = append(p.progressOptions, progress.WithTimeConstant(tau))
	}
}

// WithInstancedInitialState sets the starting morph state. The population
// begins at rest in that state rather than mid-transition.
//
// Parameters:
//   - assembled: true to start assembled, false to start scattered
//
// Returns:
//   - InstancedPopulationOption: the configured option function
func WithInstancedInitialState(assembled bool) InstancedPopulationOption {
	return func(p *instancedPopulation) {
		p.progressOptions = append(p.progressOptions, progress.WithInitialState(assembled))
	}
}
