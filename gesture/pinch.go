// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements a pinch gesture for zoomable widgets.

Pinch accepts low level pointer Events from an event Queue and
reduces two-finger touches to relative scale factors around a
focal point. Mouse wheel scrolls with the shortcut modifier held
are reported the same way, for devices without touch input.
*/
package gesture

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/unit"
)

// Pinch detects pinch gestures in the form of PinchEvents.
type Pinch struct {
	// fingers are the pressed touch pointers in press order.
	// The first two drive the gesture.
	fingers  []finger
	span     float32
	pinching bool
	grab     bool
}

type finger struct {
	id  pointer.ID
	pos f32.Point
}

// PinchEvent describes a step of a pinch gesture.
type PinchEvent struct {
	Type PinchType
	// Factor is the scale change since the previous event
	// of the gesture. It is 1 for PinchStart and PinchEnd.
	Factor float32
	// Focus is the point the gesture scales around.
	Focus f32.Point
}

// PinchType describes the kind of a PinchEvent.
type PinchType uint8

const (
	// PinchStart is reported when a second finger touches down,
	// and when a gesture continues with the remaining fingers
	// after one of its two fingers is lifted.
	PinchStart PinchType = iota
	// PinchUpdate is reported when the distance between the
	// fingers changes, or for a shortcut-modified scroll.
	PinchUpdate
	// PinchEnd is reported when one of the fingers is lifted
	// or the gesture is cancelled.
	PinchEnd
)

var (
	touchSlop = unit.Dp(3)
	// wheelStep is the scroll distance of one wheel zoom step.
	wheelStep = unit.Dp(40)
)

// wheelFactor is the scale change of one wheel zoom step.
const wheelFactor = 1.1

// scrollRange allows scroll events of any distance.
var scrollRange = image.Rectangle{
	Min: image.Pt(-math.MaxInt32, -math.MaxInt32),
	Max: image.Pt(math.MaxInt32, math.MaxInt32),
}

// Add the handler to the operation list to receive pinch events.
func (p *Pinch) Add(ops *op.Ops) {
	pointer.InputOp{
		Tag:          p,
		Grab:         p.grab,
		Types:        pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll,
		ScrollBounds: scrollRange,
	}.Add(ops)
}

// Pinching reports whether two fingers are down.
func (p *Pinch) Pinching() bool {
	return p.pinching
}

// Events returns the next pinch events, if any.
func (p *Pinch) Events(cfg unit.Metric, q event.Queue) []PinchEvent {
	var events []PinchEvent
	for _, evt := range q.Events(p) {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Type {
		case pointer.Press:
			if e.Source != pointer.Touch || p.index(e.PointerID) != -1 {
				break
			}
			p.fingers = append(p.fingers, finger{id: e.PointerID, pos: e.Position})
			if !p.pinching && len(p.fingers) >= 2 {
				events = append(events, p.start())
			}
		case pointer.Drag:
			i := p.index(e.PointerID)
			if i == -1 {
				break
			}
			p.fingers[i].pos = e.Position
			if !p.pinching || i >= 2 {
				break
			}
			span := p.fingerSpan()
			slop := float32(cfg.Dp(touchSlop))
			if p.span < slop {
				p.span = span
				break
			}
			if span < slop {
				break
			}
			factor := span / p.span
			p.span = span
			events = append(events, PinchEvent{Type: PinchUpdate, Factor: factor, Focus: p.focus()})
		case pointer.Release:
			i := p.index(e.PointerID)
			if i == -1 {
				break
			}
			if i >= 2 {
				p.fingers = append(p.fingers[:i], p.fingers[i+1:]...)
				break
			}
			if p.pinching {
				events = append(events, PinchEvent{Type: PinchEnd, Factor: 1, Focus: p.focus()})
			}
			p.fingers = append(p.fingers[:i], p.fingers[i+1:]...)
			p.pinching = false
			p.grab = false
			// Continue with the remaining fingers, if any.
			if len(p.fingers) >= 2 {
				events = append(events, p.start())
			}
		case pointer.Cancel:
			if p.pinching {
				events = append(events, PinchEvent{Type: PinchEnd, Factor: 1, Focus: p.focus()})
			}
			p.fingers = p.fingers[:0]
			p.pinching = false
			p.grab = false
		case pointer.Scroll:
			if !e.Modifiers.Contain(key.ModShortcut) || e.Scroll.Y == 0 {
				break
			}
			steps := -e.Scroll.Y / float32(cfg.Dp(wheelStep))
			factor := float32(math.Pow(wheelFactor, float64(steps)))
			events = append(events, PinchEvent{Type: PinchUpdate, Factor: factor, Focus: e.Position})
		}
	}
	return events
}

// start begins a gesture with the first two fingers.
func (p *Pinch) start() PinchEvent {
	p.span = p.fingerSpan()
	p.pinching = true
	// Claim the pointers for the whole gesture, whether or
	// not the receiver applies its updates.
	p.grab = true
	return PinchEvent{Type: PinchStart, Factor: 1, Focus: p.focus()}
}

func (p *Pinch) index(id pointer.ID) int {
	for i, f := range p.fingers {
		if f.id == id {
			return i
		}
	}
	return -1
}

func (p *Pinch) fingerSpan() float32 {
	d := p.fingers[1].pos.Sub(p.fingers[0].pos)
	return float32(math.Hypot(float64(d.X), float64(d.Y)))
}

func (p *Pinch) focus() f32.Point {
	return p.fingers[0].pos.Add(p.fingers[1].pos).Mul(0.5)
}

func (pt PinchType) String() string {
	switch pt {
	case PinchStart:
		return "PinchStart"
	case PinchUpdate:
		return "PinchUpdate"
	case PinchEnd:
		return "PinchEnd"
	default:
		panic("invalid PinchType")
	}
}
