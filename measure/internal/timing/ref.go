package timing

const (
	RefAbsent RefKind = iota
	RefName
	RefTimestamp
)

type (
	RefKind uint8

	// Ref is either a mark name or a raw timestamp
	Ref struct {
		Kind      RefKind
		Name      string
		Timestamp float64
	}

	// should return start times of all marks with given name,
	// in recording order
	markLookup = func(name string) []float64
)

func NameRef(name string) Ref {
	return Ref{Kind: RefName, Name: name}
}

func TimestampRef(ts float64) Ref {
	return Ref{Kind: RefTimestamp, Timestamp: ts}
}

func (r Ref) Present() bool {
	return r.Kind != RefAbsent
}

// Convert turns mark reference into absolute timestamp.
// Named marks resolve to the most recently recorded one.
func Convert(lookup markLookup, ref Ref) (float64, error) {
	switch ref.Kind {
	case RefName:
		times := lookup(ref.Name)
		if len(times) == 0 {
			return 0, notFound("cannot find mark: %q", ref.Name)
		}

		return times[len(times)-1], nil
	case RefTimestamp:
		if ref.Timestamp < 0 {
			return 0, invalidArgument("mark cannot be negative: %v", ref.Timestamp)
		}

		return ref.Timestamp, nil
	default:
		return 0, invalidArgument("empty mark reference")
	}
}
