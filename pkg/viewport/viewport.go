// Package viewport implements pan and zoom over a rendered scene.
//
// A Viewport maps scene coordinates to screen coordinates as
// screen = scene*Scale + Offset. Zoom happens in discrete wheel steps of
// [StepFactor]; the step count is clamped so |Step| < [MaxSteps], and zooming
// keeps the scene point under the pivot fixed on screen.
package viewport

import (
	"math"

	"github.com/matzehuels/treestack/pkg/layout"
)

const (
	// StepFactor is the scale change per zoom step.
	StepFactor = 1.15

	// MaxSteps bounds the zoom level: steps stay strictly within ±MaxSteps.
	MaxSteps = 12
)

// Viewport is a pan/zoom transform. The zero value is not usable; call New.
type Viewport struct {
	OffsetX, OffsetY float64
	Scale            float64
	Step             int
}

// New returns an identity viewport.
func New() Viewport {
	return Viewport{Scale: 1}
}

// Reset restores the identity transform.
func (v *Viewport) Reset() {
	*v = New()
}

// Pan moves the scene by (dx, dy) screen units.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// ZoomAt zooms by steps notches (positive zooms in) about the screen point
// pivot. It reports false when the zoom limit left the view unchanged.
func (v *Viewport) ZoomAt(steps int, pivot layout.Point) bool {
	next := clamp(v.Step+steps, -(MaxSteps - 1), MaxSteps-1)
	if next == v.Step {
		return false
	}

	anchor := v.ToScene(pivot)
	v.Step = next
	v.Scale = math.Pow(StepFactor, float64(next))
	v.OffsetX = pivot.X - anchor.X*v.Scale
	v.OffsetY = pivot.Y - anchor.Y*v.Scale
	return true
}

// ToScreen maps a scene point to the screen.
func (v Viewport) ToScreen(p layout.Point) layout.Point {
	return layout.Point{X: p.X*v.Scale + v.OffsetX, Y: p.Y*v.Scale + v.OffsetY}
}

// ToScene maps a screen point back into the scene.
func (v Viewport) ToScene(p layout.Point) layout.Point {
	return layout.Point{X: (p.X - v.OffsetX) / v.Scale, Y: (p.Y - v.OffsetY) / v.Scale}
}

// CenterOn pans so the center of r lands in the middle of a w×h screen.
func (v *Viewport) CenterOn(r layout.Rect, w, h float64) {
	cx := (r.MinX + r.MaxX) / 2
	cy := (r.MinY + r.MaxY) / 2
	v.OffsetX = w/2 - cx*v.Scale
	v.OffsetY = h/2 - cy*v.Scale
}

func clamp(x, lo, hi int) int {
	return max(lo, min(x, hi))
}
