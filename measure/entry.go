package measure

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

const EntryTypeMeasure = "measure"

type (
	// Entry is immutable measure result
	Entry struct {
		name      string
		startTime float64
		duration  float64
		detail    any
	}

	// EntryJSON is serialization projection of Entry
	EntryJSON struct {
		Name      string  `json:"name"`
		EntryType string  `json:"entryType"`
		StartTime float64 `json:"startTime"`
		Duration  float64 `json:"duration"`
		Detail    any     `json:"detail"`
	}
)

func newEntry(name string, startTime, endTime float64, detail any) Entry {
	return Entry{
		name:      name,
		startTime: startTime,
		duration:  endTime - startTime,
		detail:    detail,
	}
}

func (e Entry) Name() string {
	return e.name
}

func (e Entry) EntryType() string {
	return EntryTypeMeasure
}

func (e Entry) StartTime() float64 {
	return e.startTime
}

// Duration in milliseconds, negative when end precedes start
func (e Entry) Duration() float64 {
	return e.duration
}

func (e Entry) EndTime() float64 {
	return e.startTime + e.duration
}

// Detail returns caller payload or nil
func (e Entry) Detail() any {
	return e.detail
}

// Elapsed returns duration as time.Duration.
// Durations out of time.Duration range saturate to its min/max.
func (e Entry) Elapsed() time.Duration {
	ns := e.duration * float64(time.Millisecond)

	if ns >= math.MaxInt64 {
		return math.MaxInt64
	}

	if ns <= math.MinInt64 {
		return math.MinInt64
	}

	return time.Duration(ns)
}

func (e Entry) ToJSON() EntryJSON {
	return EntryJSON{
		Name:      e.name,
		EntryType: EntryTypeMeasure,
		StartTime: e.startTime,
		Duration:  e.duration,
		Detail:    e.detail,
	}
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.ToJSON())
}

func (e Entry) String() string {
	return fmt.Sprintf("%s{start: %sms, duration: %sms}", e.name, formatTime(e.startTime), formatTime(e.duration))
}
