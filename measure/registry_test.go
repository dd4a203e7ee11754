package measure

type testRegistry struct {
	now   float64
	marks []Mark
}

// mark records mark at current fake time, then moves time forward
func (r *testRegistry) mark(name string) Mark {
	m := Mark{Name: name, StartTime: r.now}
	r.marks = append(r.marks, m)
	r.now += 7.5

	return m
}

func (r *testRegistry) MarksByName(name string) []Mark {
	found := make([]Mark, 0)

	for _, m := range r.marks {
		if m.Name == name {
			found = append(found, m)
		}
	}

	return found
}

func (r *testRegistry) clock() Clock {
	return ClockFunc(func() float64 {
		return r.now
	})
}

func testNewResolver(initializers ...ResolverInitializer) (*Resolver, *testRegistry) {
	registry := &testRegistry{now: 100}
	initializers = append([]ResolverInitializer{WithClock(registry.clock())}, initializers...)

	return NewResolver(registry, initializers...), registry
}
