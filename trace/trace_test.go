package trace

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-glx/usertiming/measure"
)

func testEntries(t *testing.T) []measure.Entry {
	registry := measure.MarkRegistryFunc(func(name string) []measure.Mark {
		marks := map[string]float64{"boot": 0, "ready": 120, "paint": 300}
		if ts, ok := marks[name]; ok {
			return []measure.Mark{{Name: name, StartTime: ts}}
		}

		return nil
	})

	r := measure.NewResolver(registry, measure.WithClock(measure.ClockFunc(func() float64 {
		return 400
	})))

	entries := make([]measure.Entry, 0)
	for _, call := range []struct {
		name    string
		input   measure.StartOrOptions
		endMark string
	}{
		{name: "startup", input: measure.FromMark("boot"), endMark: "ready"},
		{name: "render", input: measure.FromMark("ready"), endMark: "paint"},
		{name: "reverse", input: measure.FromMark("paint"), endMark: "ready"},
		{name: "total", input: measure.NoStart()},
	} {
		entry, err := r.Measure(call.name, call.input, call.endMark)
		require.NoError(t, err)
		entries = append(entries, entry)
	}

	return entries
}

func TestRenderer_WritePNG(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewRenderer(WithTimelineWidth(800), WithSampleHeight(20), WithTitle("page load"))

	require.NoError(t, r.WritePNG(buf, testEntries(t)))

	img, err := png.Decode(buf)
	require.NoError(t, err)

	// 800 timeline + 2*20 padding
	assert.Equal(t, 840, img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dy(), 4*20)
}

func TestRenderer_SavePNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "trace.png")

	assert.NoError(t, NewRenderer().SavePNG(out, testEntries(t)))
	assert.FileExists(t, out)
}

func TestRenderer_noEntries(t *testing.T) {
	_, err := NewRenderer().Draw(nil)
	assert.ErrorIs(t, err, ErrNoEntries)
}

func Test_strokeInterval(t *testing.T) {
	tests := []struct {
		name string
		span span
		want float64
	}{
		{name: "1 second", span: span{from: 0, to: 1000}, want: 100},
		{name: "150ms", span: span{from: 50, to: 200}, want: 20},
		{name: "3.5 seconds", span: span{from: 0, to: 3500}, want: 500},
		{name: "1ms", span: span{from: 0, to: 1}, want: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, strokeInterval(tt.span), 1e-9)
		})
	}
}

func Test_visibleSpan(t *testing.T) {
	entries := testEntries(t)

	assert.Equal(t, span{from: 0, to: 400}, visibleSpan(entries))

	zero, err := measure.NewResolver(measure.MarkRegistryFunc(func(string) []measure.Mark {
		return nil
	})).Measure("zero", measure.FromOptions(measure.NewOptions(
		measure.WithStart(measure.Timestamp(5)),
		measure.WithEnd(measure.Timestamp(5)),
	)), "")
	require.NoError(t, err)
	assert.Equal(t, span{from: 5, to: 6}, visibleSpan([]measure.Entry{zero}))
}

func TestRenderer_Draw_largeTimestamps(t *testing.T) {
	entry, err := measure.NewResolver(measure.MarkRegistryFunc(func(string) []measure.Mark {
		return nil
	})).Measure("far", measure.FromOptions(measure.NewOptions(
		measure.WithStart(measure.Timestamp(1e17)),
		measure.WithEnd(measure.Timestamp(1e17+32)),
	)), "")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := NewRenderer(WithTimelineWidth(200)).Draw([]measure.Entry{entry})
		done <- err
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("draw did not finish for timeline far from origin")
	}
}
