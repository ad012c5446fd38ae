package bowyerwatson

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Rendering of engine state to an image, one frame per step. This mirrors what
// an interactive viewer shows, for drivers without a window.

const defaultFramePadding = 20

type FrameOptions struct {
	Scale   float64 // pixels per unit, 1 if zero
	Padding int     // pixels around the points, defaultFramePadding if zero

	// Fit the whole super triangle instead of just the points
	ShowSuperTriangle bool
}

// The region of the plane a frame covers.
func frameBounds(e *Engine, opts FrameOptions) r2.Rect {
	bounds := r2.EmptyRect()
	for _, p := range e.Points() {
		bounds = bounds.AddPoint(r2.Point{X: p.X, Y: p.Y})
	}
	if super, ok := e.SuperTriangle(); ok && (opts.ShowSuperTriangle || bounds.IsEmpty()) {
		for _, v := range super.Vertices() {
			bounds = bounds.AddPoint(r2.Point{X: v.X, Y: v.Y})
		}
	}
	if bounds.IsEmpty() {
		bounds = r2.RectFromPoints(r2.Point{})
	}
	return bounds
}

// Draw the engine's current state. The hint from the last step, if any, adds
// the highlighted triangle and its circumcircle.
func RenderFrame(e *Engine, hint Hint, opts FrameOptions) *gg.Context {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	padding := opts.Padding
	if padding <= 0 {
		padding = defaultFramePadding
	}

	bounds := frameBounds(e, opts)
	size := bounds.Size()
	width := int(math.Ceil(scale*size.X)) + padding*2
	height := int(math.Ceil(scale*size.Y)) + padding*2

	c := gg.NewContext(width, height)
	c.SetRGB255(10, 10, 10)
	c.Clear()

	c.Translate(float64(padding), float64(padding))
	c.Scale(scale, scale)
	c.Translate(-bounds.X.Lo, -bounds.Y.Lo)
	// Keep strokes one pixel wide whatever the scale
	lineWidth := 1 / scale

	if hint.Scanned && hint.Circle.IsFinite() {
		c.DrawCircle(hint.Circle.Center.X, hint.Circle.Center.Y, hint.Circle.Radius)
		c.SetRGBA255(255, 215, 0, 50)
		c.Fill()
	}

	c.SetLineWidth(lineWidth)
	c.SetRGB(1, 1, 1)
	for t := range e.Triangles() {
		strokeTriangle(c, t)
	}

	c.SetRGB(1, 0, 0)
	for _, t := range e.BadTriangles() {
		strokeTriangle(c, t)
	}
	if hint.Scanned && !hint.Bad {
		c.SetRGB(0, 1, 0)
		strokeTriangle(c, hint.Triangle)
	}

	c.SetRGB(1, 1, 0)
	for _, p := range e.Points() {
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}

	if p, ok := e.CurrentPoint(); ok {
		c.SetRGB(0, 1, 1)
		c.DrawCircle(p.X, p.Y, 5/scale)
		c.Fill()
	}
	return c
}

func strokeTriangle(c *gg.Context, t Triangle) {
	c.MoveTo(t.A.X, t.A.Y)
	c.LineTo(t.B.X, t.B.Y)
	c.LineTo(t.C.X, t.C.Y)
	c.ClosePath()
	c.Stroke()
}

func SaveFrame(path string, e *Engine, hint Hint, opts FrameOptions) error {
	c := RenderFrame(e, hint, opts)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving frame %q", path)
	}
	return nil
}
