// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/zoomview/zoomview/gesture"
	"github.com/zoomview/zoomview/zoom"
)

// ZoomImage is a widget that displays an image fitted to its viewport
// and zoomed by pinch gestures.
//
// The image is fitted once, on the first layout with non-empty
// constraints. Later layouts keep the fitted transform even if the
// constraints change; call Detach to fit again.
type ZoomImage struct {
	// Src is the image to display. Image pixels are drawn as
	// device pixels before the zoom transform.
	Src paint.ImageOp

	ctrl  zoom.Controller
	pinch gesture.Pinch
	size  image.Point
}

// Layout fills the maximum constraints with the zoomed image.
func (z *ZoomImage) Layout(gtx layout.Context) layout.Dimensions {
	for _, e := range z.pinch.Events(gtx.Metric, gtx) {
		if e.Type == gesture.PinchUpdate {
			z.ctrl.ScaleBy(e.Factor, e.Focus)
		}
	}

	z.size = gtx.Constraints.Max
	z.ctrl.Initialize(z.size, z.Src.Size())

	defer clip.Rect{Max: z.size}.Push(gtx.Ops).Pop()
	z.pinch.Add(gtx.Ops)

	if z.ctrl.Bound() {
		defer op.Affine(z.ctrl.Transform()).Push(gtx.Ops).Pop()
		defer clip.Rect{Max: z.Src.Size()}.Push(gtx.Ops).Pop()
		z.Src.Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
	}

	return layout.Dimensions{Size: z.size}
}

// Zoom scales the image by factor about the center of the viewport,
// within the same bounds as pinch gestures. It reports whether the
// image changed.
func (z *ZoomImage) Zoom(factor float32) bool {
	return z.ZoomAt(factor, layout.FPt(z.size).Mul(0.5))
}

// ZoomAt scales the image by factor about focus, in viewport
// coordinates.
func (z *ZoomImage) ZoomAt(factor float32, focus f32.Point) bool {
	return z.ctrl.ScaleBy(factor, focus)
}

// Transform returns the transform from image pixels to the viewport.
func (z *ZoomImage) Transform() f32.Affine2D {
	return z.ctrl.Transform()
}

// Scale returns the current zoom scale.
func (z *ZoomImage) Scale() float32 {
	return z.ctrl.Scale()
}

// Baseline returns the fit scale and zoom bounds.
func (z *ZoomImage) Baseline() zoom.Baseline {
	return z.ctrl.Baseline()
}

// Pinching reports whether a pinch gesture is in progress.
func (z *ZoomImage) Pinching() bool {
	return z.pinch.Pinching()
}

// Detach discards the transform. The next layout fits the image
// again, for example after Src is replaced.
func (z *ZoomImage) Detach() {
	z.ctrl.Reset()
}
