// Package scenario loads recorded marks and measure calls
// from yaml file, for replaying them through measure resolver.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-glx/usertiming/measure"
)

type (
	Scenario struct {
		Marks    []MarkRecord `yaml:"marks"`
		Now      *float64     `yaml:"now"`
		Measures []Call       `yaml:"measures"`
	}

	MarkRecord struct {
		Name string  `yaml:"name"`
		Time float64 `yaml:"time"`
	}

	// Call is single measure() invocation. Start and Options
	// are mutually exclusive, none of them means "no start".
	Call struct {
		Name    string       `yaml:"name"`
		Start   string       `yaml:"start"`
		EndMark string       `yaml:"end_mark"`
		Options *CallOptions `yaml:"options"`
	}

	CallOptions struct {
		Start    *Ref     `yaml:"start"`
		End      *Ref     `yaml:"end"`
		Duration *float64 `yaml:"duration"`
		Detail   any      `yaml:"detail"`
	}

	// Ref is mark name (yaml string) or timestamp (yaml number)
	Ref struct {
		measure.MarkRef
	}
)

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed read scenario: %w", err)
	}

	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return sc, nil
}

func Parse(data []byte) (*Scenario, error) {
	sc := &Scenario{}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}

	for i, call := range sc.Measures {
		if call.Name == "" {
			return nil, fmt.Errorf("measure #%d: name required", i)
		}

		if call.Start != "" && call.Options != nil {
			return nil, fmt.Errorf("measure %q: start and options are mutually exclusive", call.Name)
		}

		if call.Options != nil {
			call.Options.Detail = normalizeDetail(call.Options.Detail)
		}
	}

	return sc, nil
}

// normalizeDetail converts yaml maps with non-string keys
// (map[interface{}]interface{}) into json encodable map[string]any
func normalizeDetail(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, val := range typed {
			out[k] = normalizeDetail(val)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, val := range typed {
			out[fmt.Sprint(k)] = normalizeDetail(val)
		}

		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, val := range typed {
			out = append(out, normalizeDetail(val))
		}

		return out
	default:
		return v
	}
}

func (r *Ref) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: mark reference must be scalar", node.Line)
	}

	if node.ShortTag() == "!!str" {
		r.MarkRef = measure.MarkName(node.Value)
		return nil
	}

	var ts float64
	if err := node.Decode(&ts); err != nil {
		return fmt.Errorf("line %d: mark reference must be name or timestamp: %w", node.Line, err)
	}

	r.MarkRef = measure.Timestamp(ts)
	return nil
}

// Input converts call into measure start-or-options argument
func (c Call) Input() measure.StartOrOptions {
	if c.Options != nil {
		return measure.FromOptions(c.Options.build())
	}

	if c.Start != "" {
		return measure.FromMark(c.Start)
	}

	return measure.NoStart()
}

func (o *CallOptions) build() *measure.Options {
	initializers := make([]measure.OptionsInitializer, 0, 4)

	if o.Start != nil {
		initializers = append(initializers, measure.WithStart(o.Start.MarkRef))
	}

	if o.End != nil {
		initializers = append(initializers, measure.WithEnd(o.End.MarkRef))
	}

	if o.Duration != nil {
		initializers = append(initializers, measure.WithDuration(*o.Duration))
	}

	if o.Detail != nil {
		initializers = append(initializers, measure.WithDetail(o.Detail))
	}

	return measure.NewOptions(initializers...)
}

// Clock returns fixed clock when scenario pins "now",
// monotonic clock otherwise
func (s *Scenario) Clock() measure.Clock {
	if s.Now == nil {
		return measure.NewMonotonicClock()
	}

	now := *s.Now
	return measure.ClockFunc(func() float64 {
		return now
	})
}

// Registry exposes scenario marks, in file order
func (s *Scenario) Registry() measure.MarkRegistry {
	byName := make(map[string][]measure.Mark)

	for _, rec := range s.Marks {
		byName[rec.Name] = append(byName[rec.Name], measure.Mark{
			Name:      rec.Name,
			StartTime: rec.Time,
		})
	}

	return measure.MarkRegistryFunc(func(name string) []measure.Mark {
		return byName[name]
	})
}
