package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/go-glx/usertiming/cmd/usertiming/internal/scenario"
)

const testScenario = `
marks:
  - {name: start, time: 10}
  - {name: end, time: 40}
now: 100
measures:
  - name: ok
    start: start
    end_mark: end
  - name: missing
    start: nope
  - name: invalid
    options: {duration: 5}
  - name: total
`

func testLoad(t *testing.T) *scenario.Scenario {
	sc, err := scenario.Parse([]byte(testScenario))
	require.NoError(t, err)

	return sc
}

func TestRunResolve_json(t *testing.T) {
	out := &bytes.Buffer{}

	err := runResolve(out, zap.NewNop(), testLoad(t), resolveOptions{output: outputJSON})
	assert.EqualError(t, err, "2 of 4 measures failed")

	var results []struct {
		Call  string          `json:"call"`
		Entry json.RawMessage `json:"entry"`
		Error string          `json:"error"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 4)

	assert.JSONEq(t, `{"name":"ok","entryType":"measure","startTime":10,"duration":30,"detail":null}`, string(results[0].Entry))
	assert.Contains(t, results[1].Error, "not found")
	assert.Contains(t, results[2].Error, "invalid argument")
	assert.JSONEq(t, `{"name":"total","entryType":"measure","startTime":0,"duration":100,"detail":null}`, string(results[3].Entry))
}

func TestRunResolve_tableMetricsTrace(t *testing.T) {
	out := &bytes.Buffer{}
	tracePath := filepath.Join(t.TempDir(), "trace.png")

	sc := testLoad(t)
	sc.Measures = []scenario.Call{sc.Measures[0], sc.Measures[3]}

	err := runResolve(out, zap.NewNop(), sc, resolveOptions{
		output:      outputTable,
		tracePath:   tracePath,
		traceWidth:  400,
		withMetrics: true,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "total")
	assert.Contains(t, out.String(), `usertiming_measure_duration_seconds_count{name="ok"} 1`)
	assert.FileExists(t, tracePath)
}

func TestRunResolve_unknownOutput(t *testing.T) {
	err := runResolve(&bytes.Buffer{}, zap.NewNop(), testLoad(t), resolveOptions{output: "xml"})
	assert.EqualError(t, err, `unknown output format "xml"`)
}
