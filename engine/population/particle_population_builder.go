package population

import (
	"github.com/Carmen-Shannon/evergreen-go/engine/progress"
)

// ParticlePopulationOption is a functional option for configuring a particle population.
type ParticlePopulationOption func(*particlePopulation)

// WithParticlePipelineKey sets the render pipeline key the population draws
// with. Defaults to "particle"; use the ember pipeline's key for ember-style
// populations.
//
// Parameters:
//   - key: the registered pipeline key
//
// Returns:
//   - ParticlePopulationOption: the configured option function
func WithParticlePipelineKey(key string) ParticlePopulationOption {
	return func(p *particlePopulation) {
		p.pipelineKey = key
	}
}

// WithParticleTimeConstant sets the morph damping time constant in seconds.
//
// Parameters:
//   - tau: the time constant; must be positive
//
// Returns:
//   - ParticlePopulationOption: the configured option function
func WithParticleTimeConstant(tau float32) ParticlePopulationOption {
	return func(p *particlePopulation) {
		p.progressOptions = append(p.progressOptions, progress.WithTimeConstant(tau))
	}
}

// WithParticleInitialState sets the starting morph state. The population
// begins at rest in that state rather than mid-transition.
//
// Parameters:
//   - assembled: true to start assembled, false to start scattered
//
// Returns:
//   - ParticlePopulationOption: the configured option function
func WithParticleInitialState(assembled bool) ParticlePopulationOption {
	return func(p *particlePopulation) {
		p.progressOptions = append(p.progressOptions, progress.WithInitialState(assembled))
	}
}
