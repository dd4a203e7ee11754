package timing

import "math"

type (
	Resolver struct {
		lookup markLookup

		// should return current timestamp (clock now())
		// redeclared for unit tests
		getTime timeObtainer
	}

	timeObtainer = func() float64

	// Interval is resolved [start..end] pair, end may precede start
	Interval struct {
		Start float64
		End   float64
	}
)

func NewResolver(lookup markLookup, obtainer timeObtainer) *Resolver {
	return &Resolver{
		lookup:  lookup,
		getTime: obtainer,
	}
}

// Resolve validates request shape, then computes end time and start time.
// Both tables read the same request, never each other's result.
func (r *Resolver) Resolve(req Request) (Interval, error) {
	if err := Validate(req); err != nil {
		return Interval{}, err
	}

	end, err := r.computeEnd(req)
	if err != nil {
		return Interval{}, err
	}

	start, err := r.computeStart(req)
	if err != nil {
		return Interval{}, err
	}

	// NaN or Inf pass both tables (and the clock), but cannot be measured
	if !isFinite(start) || !isFinite(end) {
		return Interval{}, invalidArgument("invalid start time %v or end time %v", start, end)
	}

	return Interval{Start: start, End: end}, nil
}

func (r *Resolver) convert(ref Ref) (float64, error) {
	return Convert(r.lookup, ref)
}

// first match wins:
//  1. end mark + bare start mark name
//  2. options.end
//  3. options.start + options.duration
//  4. now
func (r *Resolver) computeEnd(req Request) (float64, error) {
	if req.EndMark != "" && req.Form == FormMarkName {
		return r.convert(NameRef(req.EndMark))
	}

	if req.isOptions() && req.End.Present() {
		return r.convert(req.End)
	}

	if req.isOptions() && req.Start.Present() && req.Duration.Present() {
		start, err := r.convert(req.Start)
		if err != nil {
			return 0, err
		}

		duration, err := r.convert(req.Duration)
		if err != nil {
			return 0, err
		}

		return start + duration, nil
	}

	return r.getTime(), nil
}

// first match wins:
//  1. options.start
//  2. options.end - options.duration
//  3. bare start mark name
//  4. zero
func (r *Resolver) computeStart(req Request) (float64, error) {
	if req.isOptions() && req.Start.Present() {
		return r.convert(req.Start)
	}

	if req.isOptions() && req.Duration.Present() && req.End.Present() {
		duration, err := r.convert(req.Duration)
		if err != nil {
			return 0, err
		}

		end, err := r.convert(req.End)
		if err != nil {
			return 0, err
		}

		return end - duration, nil
	}

	if req.Form == FormMarkName {
		return r.convert(NameRef(req.MarkName))
	}

	return 0, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
