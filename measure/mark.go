package measure

import "github.com/go-glx/usertiming/measure/internal/timing"

type (
	// Mark is previously recorded named point in time
	Mark struct {
		Name      string
		StartTime float64
	}

	// MarkRegistry provides read-only access to recorded marks.
	// MarksByName must return marks in recording order.
	MarkRegistry interface {
		MarksByName(name string) []Mark
	}

	// MarkRegistryFunc adapts plain function to MarkRegistry
	MarkRegistryFunc func(name string) []Mark

	emptyRegistry struct{}

	// MarkRef is a measure endpoint: mark name or raw timestamp.
	// Zero value is "not set".
	MarkRef struct {
		ref timing.Ref
	}
)

func (f MarkRegistryFunc) MarksByName(name string) []Mark {
	return f(name)
}

func (emptyRegistry) MarksByName(string) []Mark {
	return nil
}

// MarkName references the most recently recorded mark with given name
func MarkName(name string) MarkRef {
	return MarkRef{ref: timing.NameRef(name)}
}

// Timestamp references raw timestamp in milliseconds, must be >= 0
func Timestamp(ts float64) MarkRef {
	return MarkRef{ref: timing.TimestampRef(ts)}
}

func (m MarkRef) IsSet() bool {
	return m.ref.Present()
}

func (m MarkRef) String() string {
	switch m.ref.Kind {
	case timing.RefName:
		return m.ref.Name
	case timing.RefTimestamp:
		return formatTime(m.ref.Timestamp)
	default:
		return "<unset>"
	}
}
