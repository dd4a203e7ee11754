// Package trace renders measure entries as PNG timeline.
package trace

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/go-glx/usertiming/measure"
)

const (
	colBack            = "#fff"
	colText            = "#001"
	colTimeline        = "#000"
	colTimelineStroke  = "#555"
	colTimelineMinor   = "#999"
	colBlockMeasure    = "#e40"
	colBlockNegative   = "#02e"
	defaultTimelineW   = 1200
	defaultSampleH     = 24
	mainPaddingX       = float64(20)
	mainPaddingY       = float64(30)
	sampleMargin       = float64(4)
	strokeHalfHeight   = float64(6)
	strokeTextOffset   = float64(12)
	strokesPerTimeline = 10
	maxStrokes         = 4 * strokesPerTimeline
)

var ErrNoEntries = errors.New("nothing to render")

type (
	Renderer struct {
		timelineWidth float64
		sampleHeight  float64
		title         string
	}

	Initializer = func(*Renderer)

	// span is visible timeline range in milliseconds
	span struct {
		from float64
		to   float64
	}
)

func WithTimelineWidth(px int) Initializer {
	return func(r *Renderer) {
		r.timelineWidth = float64(px)
	}
}

func WithSampleHeight(px int) Initializer {
	return func(r *Renderer) {
		r.sampleHeight = float64(px)
	}
}

func WithTitle(title string) Initializer {
	return func(r *Renderer) {
		r.title = title
	}
}

func NewRenderer(initializers ...Initializer) *Renderer {
	r := &Renderer{
		timelineWidth: defaultTimelineW,
		sampleHeight:  defaultSampleH,
	}

	for _, init := range initializers {
		init(r)
	}

	return r
}

// Draw renders entries, one lane per entry, in given order
func (r *Renderer) Draw(entries []measure.Entry) (*gg.Context, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	visible := visibleSpan(entries)
	pxPerMs := r.timelineWidth / (visible.to - visible.from)

	// calculate graph size
	lanesHeight := float64(len(entries)) * (r.sampleHeight + sampleMargin)
	timelineY := mainPaddingY + lanesHeight + sampleMargin
	fullWidth := (mainPaddingX * 2) + r.timelineWidth
	fullHeight := timelineY + strokeTextOffset + mainPaddingY

	// canvas
	dc := gg.NewContext(int(math.Ceil(fullWidth)), int(math.Ceil(fullHeight)))

	// bg
	dc.SetHexColor(colBack)
	dc.Clear()

	// top info
	dc.SetHexColor(colText)
	info := fmt.Sprintf("%d entries, %sms .. %sms", len(entries), formatMs(visible.from), formatMs(visible.to))
	if r.title != "" {
		info = r.title + ": " + info
	}
	dc.DrawStringAnchored(info, mainPaddingX, 15, 0, 0)

	// timeline
	dc.SetHexColor(colTimeline)
	dc.DrawLine(mainPaddingX, timelineY, mainPaddingX+r.timelineWidth, timelineY)
	dc.Stroke()

	// timeline strokes
	toX := func(ms float64) float64 {
		return mainPaddingX + (ms-visible.from)*pxPerMs
	}

	interval := strokeInterval(visible)
	drawStroke := func(every float64, color string, halfHeight float64, withText bool) {
		first := math.Ceil(visible.from/every) * every

		// index based, ms += every stalls once every is below float spacing
		for i := 0; i < maxStrokes; i++ {
			ms := first + float64(i)*every
			if ms > visible.to {
				break
			}

			x := toX(ms)

			dc.SetHexColor(color)
			dc.DrawLine(x, timelineY-halfHeight, x, timelineY+halfHeight)
			dc.Stroke()

			if withText {
				dc.DrawStringAnchored(formatMs(ms)+"ms", x, timelineY+strokeTextOffset, 0.5, 0.5)
			}
		}
	}

	drawStroke(interval/2, colTimelineMinor, strokeHalfHeight/2, false)
	drawStroke(interval, colTimelineStroke, strokeHalfHeight, true)

	// blocks
	for lane, entry := range entries {
		from, to := entry.StartTime(), entry.EndTime()
		color := colBlockMeasure
		if to < from {
			from, to = to, from
			color = colBlockNegative
		}

		y := mainPaddingY + float64(lane)*(r.sampleHeight+sampleMargin)
		width := math.Max((to-from)*pxPerMs, 1)

		dc.SetHexColor(color)
		dc.DrawRectangle(toX(from), y, width, r.sampleHeight)
		dc.Fill()

		dc.SetHexColor(colText)
		dc.DrawStringAnchored(entry.Name(), toX(from)+2, y+r.sampleHeight/2, 0, 0.5)
	}

	return dc, nil
}

func (r *Renderer) WritePNG(w io.Writer, entries []measure.Entry) error {
	dc, err := r.Draw(entries)
	if err != nil {
		return err
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed encode trace png: %w", err)
	}

	return nil
}

func (r *Renderer) SavePNG(path string, entries []measure.Entry) error {
	dc, err := r.Draw(entries)
	if err != nil {
		return err
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed save trace png to %s: %w", path, err)
	}

	return nil
}

func visibleSpan(entries []measure.Entry) span {
	s := span{from: math.Inf(1), to: math.Inf(-1)}

	for _, entry := range entries {
		s.from = math.Min(s.from, math.Min(entry.StartTime(), entry.EndTime()))
		s.to = math.Max(s.to, math.Max(entry.StartTime(), entry.EndTime()))
	}

	if s.to <= s.from {
		// zero length entries still need visible timeline
		s.to = s.from + 1
	}

	return s
}

// strokeInterval picks 1/2/5 * 10^n milliseconds interval,
// giving about strokesPerTimeline labeled strokes
func strokeInterval(s span) float64 {
	raw := (s.to - s.from) / strokesPerTimeline
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))

	for _, step := range []float64{1, 2, 5} {
		if raw <= step*magnitude {
			return step * magnitude
		}
	}

	return 10 * magnitude
}

func formatMs(ms float64) string {
	return fmt.Sprintf("%.4g", ms)
}
