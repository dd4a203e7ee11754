package measure

type (
	// EntrySink receives every successfully resolved entry,
	// the performance entry buffer usually.
	EntrySink interface {
		Append(entry Entry)
	}

	EntrySinkFunc func(entry Entry)

	multiSink []EntrySink
)

func (f EntrySinkFunc) Append(entry Entry) {
	f(entry)
}

func (m multiSink) Append(entry Entry) {
	for _, sink := range m {
		sink.Append(entry)
	}
}
