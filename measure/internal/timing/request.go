package timing

const (
	FormAbsent Form = iota
	FormMarkName
	FormOptions
)

type (
	// Form is the shape of the second measure() argument
	Form uint8

	Request struct {
		Form Form

		// FormMarkName
		MarkName string

		// FormOptions
		Start    Ref
		End      Ref
		Duration Ref // always RefTimestamp when present

		// separate end mark parameter, "" when not given
		EndMark string
	}
)

func (r Request) isOptions() bool {
	return r.Form == FormOptions
}
