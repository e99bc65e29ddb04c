package config

import "time"

// SimulationConfig controls how scenario scripts are played against a planet
type SimulationConfig struct {
	// Maximum events sent to the planet per second
	EventsPerSecond float64 `mapstructure:"events_per_second" validate:"gt=0"`

	// Events that may be sent back to back before pacing kicks in
	Burst int `mapstructure:"burst" validate:"min=1"`

	// How long to wait for each planet reply
	ResponseTimeout time.Duration `mapstructure:"response_timeout" validate:"gt=0"`
}
