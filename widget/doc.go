// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements a zoomable image control for Gio. The
// widget keeps persistent state across frames and processes pinch
// gestures from package gesture; the transform math lives in package
// zoom.
package widget
