package timing

import "fmt"

const (
	KindInvalidArgument Kind = iota + 1
	KindNotFound
)

type (
	Kind uint8

	// Error is returned by every failing step of the measure algorithm.
	// Sentinel values (empty Msg) match any error of the same Kind with errors.Is.
	Error struct {
		Kind Kind
		Msg  string
	}
)

var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrNotFound        = &Error{Kind: KindNotFound}
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

func invalidArgument(format string, args ...any) error {
	return &Error{Kind: KindInvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}
