// package progress implements the damped scalar that drives every morphing
// population. Each population owns one Controller; the controllers are
// deliberately independent so layers settle at staggered times.
package progress

import (
	"sync"

	"github.com/chewxy/math32"
)

// Controller holds a single progress scalar in [0, 1] that is smoothed
// toward a binary goal every frame. 1 means fully assembled, 0 means fully
// scattered. The scalar is continuous for the lifetime of the controller:
// it is never reset, and a goal flip mid-flight simply redirects the
// damping.
type Controller interface {
	// Value returns the current progress scalar.
	//
	// Returns:
	//   - float32: the damped progress in [0, 1]
	Value() float32

	// Goal returns the current damping target (0 or 1).
	//
	// Returns:
	//   - float32: the goal value
	Goal() float32

	// Eased returns the cubic ease-in-out of the current value. This is the
	// curve the particle shaders apply on the GPU; it is exposed here for
	// diagnostics and tests. The rigid-instance path interpolates on the raw
	// Value instead.
	//
	// Returns:
	//   - float32: the eased progress in [0, 1]
	Eased() float32

	// TimeConstant returns the damping time constant in seconds.
	//
	// Returns:
	//   - float32: the time constant
	TimeConstant() float32

	// SetAssembled redirects the goal: true damps toward 1 (assembled),
	// false damps toward 0 (scattered). The current value is left untouched
	// so rapid toggling reverses the morph mid-flight.
	//
	// Parameters:
	//   - assembled: the new target state
	SetAssembled(assembled bool)

	// Update advances the scalar one frame toward the goal using exponential
	// smoothing. Non-finite, negative, or zero deltaTime leaves the value
	// unchanged — a NaN here would otherwise poison every transform buffer
	// downstream with no recovery path.
	//
	// Parameters:
	//   - deltaTime: elapsed seconds since the previous frame
	Update(deltaTime float32)
}

type controller struct {
	mu *sync.Mutex

	current      float32
	goal         float32
	timeConstant float32
}

var _ Controller = &controller{}

// NewController creates a Controller with all specified options applied.
// The default starts fully scattered (current = goal = 0) with a time
// constant of 1.2 seconds.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the configured controller
func NewController(options ...ControllerBuilderOption) Controller {
	c := &controller{
		mu:           &sync.Mutex{},
		current:      0,
		goal:         0,
		timeConstant: 1.2,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *controller) Value() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *controller) Goal() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.goal
}

func (c *controller) Eased() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return EaseInOutCubic(c.current)
}

func (c *controller) TimeConstant() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timeConstant
}

func (c *controller) SetAssembled(assembled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if assembled {
		c.goal = 1
	} else {
		c.goal = 0
	}
}

func (c *controller) Update(deltaTime float32) {
	if math32.IsNaN(deltaTime) || math32.IsInf(deltaTime, 0) || deltaTime <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == c.goal {
		return
	}

	// Exponential smoothing: the remaining distance decays by e^(-dt/tau).
	// Asymptotic, monotone, and free of overshoot for any dt.
	alpha := 1 - math32.Exp(-deltaTime/c.timeConstant)
	c.current += (c.goal - c.current) * alpha
}

// EaseInOutCubic applies the cubic ease-in-out curve used by the particle
// shaders: slow start, fast middle, slow finish. Maps 0 to 0 and 1 to 1.
//
// Parameters:
//   - p: raw progress in [0, 1]
//
// Returns:
//   - float32: the eased progress
func EaseInOutCubic(p float32) float32 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q/2
}
