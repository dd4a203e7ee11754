package measure

import "github.com/go-glx/usertiming/measure/internal/timing"

const (
	KindInvalidArgument = timing.KindInvalidArgument
	KindNotFound        = timing.KindNotFound
)

type (
	// ErrorKind classifies measure failures
	ErrorKind = timing.Kind

	// Error is the only error type returned by Resolver.Measure.
	// Use errors.Is with ErrInvalidArgument / ErrNotFound to check the kind.
	Error = timing.Error
)

var (
	// ErrInvalidArgument matches malformed options, negative timestamps
	// and unresolvable start/end times.
	ErrInvalidArgument = timing.ErrInvalidArgument

	// ErrNotFound matches a mark name missing from the registry.
	ErrNotFound = timing.ErrNotFound
)
