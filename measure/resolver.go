package measure

import (
	"go.uber.org/zap"

	"github.com/go-glx/usertiming/measure/internal/timing"
)

type Resolver struct {
	registry MarkRegistry
	clock    Clock
	sinks    multiSink
	logger   *zap.Logger
}

// NewResolver creates resolver over given mark registry.
// Nil registry has no marks, so every named reference is not found.
// By default it uses monotonic clock with origin at creation time,
// has no sinks and does not log.
func NewResolver(registry MarkRegistry, initializers ...ResolverInitializer) *Resolver {
	if registry == nil {
		registry = emptyRegistry{}
	}

	r := &Resolver{
		registry: registry,
		clock:    NewMonotonicClock(),
		logger:   zap.NewNop(),
	}

	for _, init := range initializers {
		init(r)
	}

	return r
}

// Measure resolves named measure entry.
//
// endMark is the separate end mark name parameter, "" means not given.
// It is valid only together with FromMark input.
func (r *Resolver) Measure(name string, startOrOptions StartOrOptions, endMark string) (Entry, error) {
	resolver := timing.NewResolver(
		transformRegistryToLookup(r.registry),
		r.clock.Now,
	)

	interval, err := resolver.Resolve(transformRequest(startOrOptions, endMark))
	if err != nil {
		return Entry{}, err
	}

	entry := newEntry(name, interval.Start, interval.End, startOrOptions.detail())
	r.sinks.Append(entry)

	r.logger.Debug("measure resolved",
		zap.String("name", entry.Name()),
		zap.Float64("startTime", entry.StartTime()),
		zap.Float64("duration", entry.Duration()),
	)

	return entry, nil
}

// MustMeasure is like Measure but panics on error
func (r *Resolver) MustMeasure(name string, startOrOptions StartOrOptions, endMark string) Entry {
	entry, err := r.Measure(name, startOrOptions, endMark)
	if err != nil {
		panic(err)
	}

	return entry
}
