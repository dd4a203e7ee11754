package measure

const (
	inputAbsent inputKind = iota
	inputMarkName
	inputOptions
)

type (
	inputKind uint8

	// StartOrOptions is the second measure argument:
	// nothing, a start mark name, or Options.
	// Zero value is NoStart().
	StartOrOptions struct {
		kind     inputKind
		markName string
		options  *Options
	}
)

// NoStart measures from time origin (0) to now
func NoStart() StartOrOptions {
	return StartOrOptions{kind: inputAbsent}
}

// FromMark measures from most recent mark with given name
func FromMark(name string) StartOrOptions {
	return StartOrOptions{kind: inputMarkName, markName: name}
}

// FromOptions measures by explicit options. Nil options
// are treated as empty ones and will fail validation.
func FromOptions(opts *Options) StartOrOptions {
	if opts == nil {
		opts = NewOptions()
	}

	return StartOrOptions{kind: inputOptions, options: opts}
}

func (s StartOrOptions) detail() any {
	if s.kind != inputOptions {
		return nil
	}

	return s.options.detail
}
