package measure

import "go.uber.org/zap"

type (
	ResolverInitializer = func(*Resolver)
)

// WithClock replaces default monotonic clock, nil keeps the default
func WithClock(clock Clock) ResolverInitializer {
	return func(r *Resolver) {
		if clock == nil {
			return
		}

		r.clock = clock
	}
}

// WithSink adds entry sink, can be used multiple times. Nil is ignored.
func WithSink(sink EntrySink) ResolverInitializer {
	return func(r *Resolver) {
		if sink == nil {
			return
		}

		r.sinks = append(r.sinks, sink)
	}
}

// WithLogger sets resolver logger, nil keeps nop logger
func WithLogger(logger *zap.Logger) ResolverInitializer {
	return func(r *Resolver) {
		if logger == nil {
			return
		}

		r.logger = logger
	}
}
