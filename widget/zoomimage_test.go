// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"
	"testing"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/router"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
)

func newZoomImage(w, h int) *ZoomImage {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	return &ZoomImage{Src: paint.NewImageOp(img)}
}

func TestZoomImageFit(t *testing.T) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(100, 100)),
	}
	z := newZoomImage(200, 50)
	dims := z.Layout(gtx)
	if dims.Size != image.Pt(100, 100) {
		t.Errorf("got size %v, want (100,100)", dims.Size)
	}
	if got := z.Scale(); got != 0.5 {
		t.Errorf("got fit scale %v, want 0.5", got)
	}
	if got, want := z.Baseline().Min, float32(0.25); got != want {
		t.Errorf("got min scale %v, want %v", got, want)
	}

	// A second layout pass does not fit again.
	gtx.Ops.Reset()
	gtx.Constraints = layout.Exact(image.Pt(50, 50))
	z.Layout(gtx)
	if got := z.Scale(); got != 0.5 {
		t.Errorf("got scale %v after relayout, want 0.5", got)
	}

	z.Detach()
	gtx.Ops.Reset()
	z.Layout(gtx)
	if got := z.Scale(); got != 0.25 {
		t.Errorf("got scale %v after detach, want 0.25", got)
	}
}

func TestZoomImageWithoutSource(t *testing.T) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(100, 100)),
	}
	var z ZoomImage
	z.Layout(gtx)
	if z.Zoom(1.5) {
		t.Error("zoom applied without an image")
	}
	if z.Transform() != (f32.Affine2D{}) {
		t.Errorf("got transform %v, want identity", z.Transform())
	}
}

func TestZoomImageButtons(t *testing.T) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(100, 100)),
	}
	z := newZoomImage(200, 50)
	z.Layout(gtx)
	for i := 0; i < 10; i++ {
		z.Zoom(1.25)
	}
	if got := z.Scale(); got != 2 {
		t.Errorf("got scale %v, want 2", got)
	}
	if z.Zoom(1.25) {
		t.Error("zoom past the upper bound was applied")
	}
	// The viewport center stays put.
	center := f32.Pt(50, 50)
	p := z.Transform().Invert().Transform(center)
	z.Zoom(0.5)
	if got := z.Transform().Transform(p); !near(got, center) {
		t.Errorf("center moved to %v", got)
	}
}

func TestZoomImagePinch(t *testing.T) {
	var r router.Router
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(100, 100)),
		Queue:       &r,
	}
	z := newZoomImage(200, 50)
	z.Layout(gtx)
	r.Frame(gtx.Ops)

	r.Queue(
		touch(pointer.Press, 0, 40, 50),
		touch(pointer.Press, 1, 60, 50),
		touch(pointer.Move, 1, 80, 50),
	)
	gtx.Ops.Reset()
	z.Layout(gtx)
	if !z.Pinching() {
		t.Fatal("two fingers did not start a pinch")
	}
	// The span doubled from 20 to 40 pixels.
	if got := z.Scale(); got != 1 {
		t.Errorf("got scale %v, want 1", got)
	}
	r.Frame(gtx.Ops)

	// Spreading further is clamped at the upper bound.
	r.Queue(touch(pointer.Move, 0, 0, 50))
	gtx.Ops.Reset()
	z.Layout(gtx)
	if got := z.Scale(); got != 2 {
		t.Errorf("got scale %v, want 2", got)
	}
}

func TestZoomImageWheel(t *testing.T) {
	var r router.Router
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(100, 100)),
		Queue:       &r,
	}
	z := newZoomImage(200, 50)
	z.Layout(gtx)
	r.Frame(gtx.Ops)

	r.Queue(pointer.Event{
		Type:      pointer.Scroll,
		Source:    pointer.Mouse,
		Position:  f32.Pt(50, 50),
		Scroll:    f32.Pt(0, 400),
		Modifiers: key.ModShortcut,
	})
	gtx.Ops.Reset()
	z.Layout(gtx)
	if got := z.Scale(); got != 0.25 {
		t.Errorf("got scale %v, want 0.25", got)
	}
}

func touch(typ pointer.Type, id pointer.ID, x, y float32) event.Event {
	return pointer.Event{
		Type:      typ,
		Source:    pointer.Touch,
		PointerID: id,
		Position:  f32.Pt(x, y),
	}
}

func near(p1, p2 f32.Point) bool {
	dx, dy := float64(p2.X-p1.X), float64(p2.Y-p1.Y)
	return math.Sqrt(dx*dx+dy*dy) < 1e-3
}
