package engine

import "time"

// EngineBuilderOption is a function that modifies the engine configuration.
type EngineBuilderOption func(*engine)

// WithTickRate sets the animation tick rate in ticks per second.
// Values <= 0 keep the default of 60.
//
// Parameters:
//   - tps: target ticks per second
//
// Returns:
//   - EngineBuilderOption: the option function
func WithTickRate(tps float64) EngineBuilderOption {
	return func(e *engine) {
		if tps > 0 {
			e.tickInterval = time.Duration(float64(time.Second) / tps)
		}
	}
}
