package population

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// EntityStoreOption is a functional option for configuring entity sampling.
type EntityStoreOption func(*entityStoreConfig)

type entityStoreConfig struct {
	rng      *rand.Rand
	speedMin float32
	speedMax float32
	scaleMin float32
	scaleMax float32
	palette  []colorful.Color
}

// applyEntityStoreOptions builds the sampling configuration, falling back to
// an unseeded source when no seed or generator is supplied.
func applyEntityStoreOptions(options []EntityStoreOption) *entityStoreConfig {
	cfg := &entityStoreConfig{
		speedMin: 0.5,
		speedMax: 1.5,
		scaleMin: 0.8,
		scaleMax: 1.2,
	}
	for _, opt := range options {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return cfg
}

// WithStoreSeed seeds the entity attribute generator for reproducible stores.
//
// Parameters:
//   - seed: the random source seed
//
// Returns:
//   - EntityStoreOption: the configured option function
func WithStoreSeed(seed int64) EntityStoreOption {
	return func(cfg *entityStoreConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStoreRand supplies the random generator directly, letting a store share
// one source with its samplers.
//
// Parameters:
//   - rng: the random generator to use
//
// Returns:
//   - EntityStoreOption: the configured option function
func WithStoreRand(rng *rand.Rand) EntityStoreOption {
	return func(cfg *entityStoreConfig) {
		cfg.rng = rng
	}
}

// WithSpeedRange sets the bounds for per-entity animation speed draws.
//
// Parameters:
//   - min: the lower bound
//   - max: the upper bound
//
// Returns:
//   - EntityStoreOption: the configured option function
func WithSpeedRange(min, max float32) EntityStoreOption {
	return func(cfg *entityStoreConfig) {
		cfg.speedMin = min
		cfg.speedMax = max
	}
}

// WithScaleRange sets the bounds for per-entity base scale draws.
//
// Parameters:
//   - min: the lower bound
//   - max: the upper bound
//
// Returns:
//   - EntityStoreOption: the configured option function
func WithScaleRange(min, max float32) EntityStoreOption {
	return func(cfg *entityStoreConfig) {
		cfg.scaleMin = min
		cfg.scaleMax = max
	}
}

// WithPalette sets the color palette entities draw their tints from, cycled
// by entity index.
//
// Parameters:
//   - palette: the colors to cycle through
//
// Returns:
//   - EntityStoreOption: the configured option function
func WithPalette(palette []colorful.Color) EntityStoreOption {
	return func(cfg *entityStoreConfig) {
		cfg.palette = palette
	}
}
