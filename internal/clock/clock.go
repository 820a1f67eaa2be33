package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock supplies the evaluation instant for time-derived metrics (recency,
// lifespan cutoffs). Report computations must never call time.Now directly.
type Clock interface {
	Now() time.Time
}

// Module provides the system clock.
var Module = fx.Module("clock",
	fx.Provide(NewSystemClock),
)

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
