package measure

type Options struct {
	start    MarkRef
	end      MarkRef
	duration *float64
	detail   any
}

func NewOptions(options ...OptionsInitializer) *Options {
	opts := &Options{}

	for _, init := range options {
		init(opts)
	}

	return opts
}

func (o *Options) Start() MarkRef {
	return o.start
}

func (o *Options) End() MarkRef {
	return o.end
}

// Duration returns duration and whether it was set
func (o *Options) Duration() (float64, bool) {
	if o.duration == nil {
		return 0, false
	}

	return *o.duration, true
}

func (o *Options) Detail() any {
	return o.detail
}
