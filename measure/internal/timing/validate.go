package timing

// Validate rejects structurally invalid option combinations.
// Only options form is checked, other forms are always valid here.
func Validate(req Request) error {
	if !req.isOptions() {
		return nil
	}

	if req.EndMark != "" {
		return invalidArgument("if startOrOptions is options, endMark cannot be provided")
	}

	if !req.Start.Present() && !req.End.Present() {
		return invalidArgument("invalid startOrOptions: start or end must be provided")
	}

	if req.Start.Present() && req.End.Present() && req.Duration.Present() {
		return invalidArgument("invalid startOrOptions: start, end and duration cannot be provided together")
	}

	return nil
}
