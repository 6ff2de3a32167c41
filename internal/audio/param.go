package audio

import (
	"math"
	"sort"
)

type eventKind int

const (
	eventSet eventKind = iota
	eventLinear
	eventExponential
)

type paramEvent struct {
	kind  eventKind
	time  float64 // Seconds on the owning stream's clock
	value float64
}

// Param is a value that changes over time along scheduled events.
//
// SetValueAtTime jumps to a value. The ramps arrive at their value at the
// given time, starting from the event scheduled before them. Events at the
// same time keep the order they were scheduled in.
// Param is not safe for concurrent use.
type Param struct {
	initial float64
	events  []paramEvent
}

// NewParam creates a parameter holding value until an event says otherwise.
func NewParam(value float64) *Param {
	return &Param{initial: value}
}

// SetValueAtTime schedules a jump to value at time t.
func (p *Param) SetValueAtTime(value, t float64) {
	p.insert(paramEvent{kind: eventSet, time: t, value: value})
}

// LinearRampToValueAtTime schedules a straight-line ramp arriving at value at time t.
func (p *Param) LinearRampToValueAtTime(value, t float64) {
	p.insert(paramEvent{kind: eventLinear, time: t, value: value})
}

// ExponentialRampToValueAtTime schedules a geometric ramp arriving at value at time t.
// A ramp across zero or from zero holds the previous value until t.
func (p *Param) ExponentialRampToValueAtTime(value, t float64) {
	p.insert(paramEvent{kind: eventExponential, time: t, value: value})
}

func (p *Param) insert(e paramEvent) {
	i := sort.Search(len(p.events), func(i int) bool {
		return p.events[i].time > e.time
	})
	p.events = append(p.events, paramEvent{})
	copy(p.events[i+1:], p.events[i:])
	p.events[i] = e
}

// ValueAt returns the parameter's value at time t.
func (p *Param) ValueAt(t float64) float64 {
	prevTime, prevValue := 0.0, p.initial

	for _, e := range p.events {
		if e.time <= t {
			prevTime, prevValue = e.time, e.value
			continue
		}

		span := e.time - prevTime
		if span <= 0 {
			return prevValue
		}
		frac := (t - prevTime) / span

		switch e.kind {
		case eventLinear:
			return prevValue + (e.value-prevValue)*frac
		case eventExponential:
			if prevValue == 0 || e.value == 0 || (prevValue < 0) != (e.value < 0) {
				return prevValue
			}
			return prevValue * math.Pow(e.value/prevValue, frac)
		default:
			return prevValue
		}
	}
	return prevValue
}

// Prune forgets events that can no longer affect values at or after t.
// The last event at or before t stays as the starting point for later ramps.
func (p *Param) Prune(t float64) {
	last := -1
	for i, e := range p.events {
		if e.time > t {
			break
		}
		last = i
	}
	if last <= 0 {
		return
	}
	n := copy(p.events, p.events[last:])
	p.events = p.events[:n]
}

// Pending returns the number of events still scheduled.
func (p *Param) Pending() int {
	return len(p.events)
}
