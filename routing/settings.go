package routing

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/errors"
)

// Settings configures the transit router for a session.
type Settings struct {
	// BusWaitTime is the wait at any stop before boarding, in minutes.
	BusWaitTime int
	// BusVelocity is the bus speed in km/h.
	BusVelocity float64
}

// Validate checks the settings bounds: both values must lie in [1, 1000].
func (s Settings) Validate() error {
	if s.BusWaitTime < 1 || s.BusWaitTime > 1000 {
		return errors.Newf(errors.InvalidInput, "bus_wait_time %d out of range [1, 1000]", s.BusWaitTime)
	}
	if s.BusVelocity < 1 || s.BusVelocity > 1000 {
		return errors.Newf(errors.InvalidInput, "bus_velocity %v out of range [1, 1000]", s.BusVelocity)
	}
	return nil
}

// metresPerMinute converts the km/h velocity into metres per minute.
func (s Settings) metresPerMinute() float64 {
	return s.BusVelocity * 1000.0 / 60.0
}
