package clock

import "time"

// Clock supplies the current time. The pipeline never reads time.Now
// directly so date checks and document timestamps are testable.
type Clock interface {
	Now() time.Time
}

// System is the wall-clock implementation used in production wiring.
type System struct{}

func (System) Now() time.Time { return time.Now() }
