package progress

import "fmt"

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*controller)

// WithTimeConstant sets the damping time constant in seconds. Larger values
// settle more slowly; the populations in this engine use values between 1.0
// and 1.5 to stagger their morph timing.
//
// Parameters:
//   - tau: the time constant in seconds (must be > 0)
//
// Returns:
//   - ControllerBuilderOption: the configured option function
func WithTimeConstant(tau float32) ControllerBuilderOption {
	return func(c *controller) {
		if tau <= 0 {
			panic(fmt.Sprintf("progress: time constant must be positive, got %v", tau))
		}
		c.timeConstant = tau
	}
}

// WithInitialState sets both the starting value and the goal to the given
// state, so the controller begins at rest rather than mid-morph.
//
// Parameters:
//   - assembled: true to start fully assembled (1), false fully scattered (0)
//
// Returns:
//   - ControllerBuilderOption: the configured option function
func WithInitialState(assembled bool) ControllerBuilderOption {
	return func(c *controller) {
		if assembled {
			c.current = 1
			c.goal = 1
		} else {
			c.current = 0
			c.goal = 0
		}
	}
}
