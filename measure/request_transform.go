package measure

import "github.com/go-glx/usertiming/measure/internal/timing"

func transformRequest(input StartOrOptions, endMark string) timing.Request {
	req := timing.Request{
		Form:    transformFormToInternal(input.kind),
		EndMark: endMark,
	}

	switch input.kind {
	case inputMarkName:
		req.MarkName = input.markName
	case inputOptions:
		req.Start = input.options.start.ref
		req.End = input.options.end.ref

		if input.options.duration != nil {
			req.Duration = timing.TimestampRef(*input.options.duration)
		}
	}

	return req
}

func transformFormToInternal(k inputKind) timing.Form {
	switch k {
	case inputMarkName:
		return timing.FormMarkName
	case inputOptions:
		return timing.FormOptions
	default:
		return timing.FormAbsent
	}
}

func transformRegistryToLookup(registry MarkRegistry) func(name string) []float64 {
	return func(name string) []float64 {
		marks := registry.MarksByName(name)
		times := make([]float64, 0, len(marks))

		for _, mark := range marks {
			times = append(times, mark.StartTime)
		}

		return times
	}
}
