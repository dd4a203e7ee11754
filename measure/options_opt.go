package measure

type (
	OptionsInitializer = func(*Options)
)

func WithStart(ref MarkRef) OptionsInitializer {
	return func(o *Options) {
		o.start = ref
	}
}

func WithEnd(ref MarkRef) OptionsInitializer {
	return func(o *Options) {
		o.end = ref
	}
}

// WithDuration sets elapsed milliseconds, must be >= 0
func WithDuration(ms float64) OptionsInitializer {
	return func(o *Options) {
		o.duration = &ms
	}
}

func WithDetail(detail any) OptionsInitializer {
	return func(o *Options) {
		o.detail = detail
	}
}
