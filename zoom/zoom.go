// SPDX-License-Identifier: Unlicense OR MIT

/*
Package zoom implements the transform math of a zoomable image view.

An image is fitted into its viewport once, when the viewport size is first
known. The fit scale defines a zoom band: later scale updates are relative
to the current transform and are clamped to the band.

The coordinate space has the origin in the top left corner with the axes
extending right and down, as in package f32.
*/
package zoom

import (
	"image"
	"math"

	"gioui.org/f32"
)

const (
	// MaxScale is the largest horizontal scale a transform may reach,
	// regardless of the fit scale.
	MaxScale = 2.0
	// MinRatio is the smallest scale relative to the fit scale.
	MinRatio = 0.5
)

// Baseline is the zoom band captured when an image is fitted.
type Baseline struct {
	// Fit is the scale applied by the initial fit.
	Fit float32
	// Min and Max bound the scale reachable by zooming.
	Min, Max float32
}

// Controller owns the transform of one zoomable image for the lifetime
// of its attachment to a viewport. The zero value is an unfitted
// controller with an identity transform.
type Controller struct {
	transform f32.Affine2D
	baseline  Baseline
	fitted    bool
	bound     bool
}

// NewBaseline returns the zoom band around a fit scale.
func NewBaseline(fit float32) Baseline {
	return Baseline{Fit: fit, Min: MinRatio * fit, Max: MaxScale}
}

// FitScale returns the scale that makes an image of the intrinsic size
// visible in the viewport. An image that is larger on both axes shrinks
// to fit both, an image larger on one axis is fitted to that axis and an
// image that fits on both axes is left unscaled.
func FitScale(viewport, intrinsic image.Point) float32 {
	w, h := float32(viewport.X), float32(viewport.Y)
	iw, ih := float32(intrinsic.X), float32(intrinsic.Y)
	switch {
	case iw > w && ih > h:
		return min(w/iw, h/ih)
	case iw >= w && ih <= h:
		return w / iw
	case iw <= w && ih >= h:
		return h / ih
	default:
		return 1
	}
}

// FitTransform centers an image of the intrinsic size in the viewport,
// rounded to whole pixels, and then scales it by fit about the viewport
// center.
func FitTransform(viewport, intrinsic image.Point, fit float32) f32.Affine2D {
	off := f32.Pt(
		float32(math.Round(float64(viewport.X-intrinsic.X)/2)),
		float32(math.Round(float64(viewport.Y-intrinsic.Y)/2)),
	)
	center := f32.Pt(float32(viewport.X)/2, float32(viewport.Y)/2)
	return f32.Affine2D{}.Offset(off).Scale(center, f32.Pt(fit, fit))
}

// ScaleOf returns the horizontal scale of t.
func ScaleOf(t f32.Affine2D) float32 {
	sx, _, _, _, _, _ := t.Elems()
	return sx
}

// ApplyScaleDelta scales t by factor about focus and returns the result.
//
// A factor above 1 is admitted only while the scale of t is at most
// b.Max, and a factor below 1 only while it is at least b.Min. An
// admitted factor is clamped so the resulting scale stays within the
// band. The returned bool reports whether t changed.
func ApplyScaleDelta(t f32.Affine2D, b Baseline, factor float32, focus f32.Point) (f32.Affine2D, bool) {
	sx, hx, ox, hy, sy, oy := t.Elems()
	if sx <= 0 {
		return t, false
	}
	if !((sx <= b.Max && factor >= 1) || (sx >= b.Min && factor <= 1)) {
		return t, false
	}
	target := sx * factor
	if target < b.Min {
		target = b.Min
	}
	if target > b.Max {
		target = b.Max
	}
	f := target / sx
	if f == 1 {
		return t, false
	}
	// Post-multiply by a scale about focus: p' = f*(p-focus) + focus.
	// The scales are stored as target rather than sx*f so they land
	// exactly on the band edges and stay uniform.
	nsy := sy * f
	if sy == sx {
		nsy = target
	}
	return f32.NewAffine2D(
		target, hx*f, ox*f+focus.X*(1-f),
		hy*f, nsy, oy*f+focus.Y*(1-f),
	), true
}

// Initialize fits an image of the intrinsic size into the viewport and
// returns the resulting transform. Only the first call with a non-empty
// viewport has any effect. If no image is bound, signalled by an empty
// intrinsic size, the transform stays the identity and the controller
// is still considered fitted.
func (c *Controller) Initialize(viewport, intrinsic image.Point) f32.Affine2D {
	if c.fitted || viewport.X <= 0 || viewport.Y <= 0 {
		return c.transform
	}
	c.fitted = true
	if intrinsic.X <= 0 || intrinsic.Y <= 0 {
		c.baseline = NewBaseline(1)
		return c.transform
	}
	c.bound = true
	fit := FitScale(viewport, intrinsic)
	c.baseline = NewBaseline(fit)
	c.transform = FitTransform(viewport, intrinsic, fit)
	return c.transform
}

// ScaleBy applies a relative scale factor about focus to the transform.
// It reports whether the transform changed; updates before a fit or
// without an image are ignored.
func (c *Controller) ScaleBy(factor float32, focus f32.Point) bool {
	if !c.bound {
		return false
	}
	t, changed := ApplyScaleDelta(c.transform, c.baseline, factor, focus)
	c.transform = t
	return changed
}

// Reset detaches the controller. The next Initialize fits again.
func (c *Controller) Reset() {
	*c = Controller{}
}

// Transform returns the current image transform.
func (c *Controller) Transform() f32.Affine2D {
	return c.transform
}

// Scale returns the current horizontal scale.
func (c *Controller) Scale() float32 {
	return ScaleOf(c.transform)
}

// Baseline returns the zoom band captured by the fit. It is the zero
// Baseline before the fit.
func (c *Controller) Baseline() Baseline {
	return c.baseline
}

// Fitted reports whether Initialize has run for this attachment.
func (c *Controller) Fitted() bool {
	return c.fitted
}

// Bound reports whether an image was present when the controller was
// fitted.
func (c *Controller) Bound() bool {
	return c.bound
}
