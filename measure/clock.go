package measure

import (
	"strconv"
	"time"
)

type (
	// Clock provides current high resolution timestamp in milliseconds
	Clock interface {
		Now() float64
	}

	ClockFunc func() float64

	// MonotonicClock reports milliseconds elapsed since its time origin
	MonotonicClock struct {
		origin time.Time

		// should return current time (time.Now())
		// redeclared for unit tests
		getTime timeObtainer
	}

	timeObtainer = func() time.Time
)

func (f ClockFunc) Now() float64 {
	return f()
}

// NewMonotonicClock creates clock with time origin at the moment of call
func NewMonotonicClock() *MonotonicClock {
	return newMonotonicClock(time.Now)
}

func newMonotonicClock(obtainer timeObtainer) *MonotonicClock {
	return &MonotonicClock{
		origin:  obtainer(),
		getTime: obtainer,
	}
}

func (c *MonotonicClock) Origin() time.Time {
	return c.origin
}

func (c *MonotonicClock) Now() float64 {
	return durationToMillis(c.getTime().Sub(c.origin))
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func formatTime(ms float64) string {
	return strconv.FormatFloat(ms, 'f', -1, 64)
}
