package cardboard

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// panTween animates the camera center toward a world position.
type panTween struct {
	x, y         *gween.Tween
	doneX, doneY bool
}

// Camera maps screen pixels in its viewport onto the board. The board projects
// the cursor through its single camera to get the world pointer, and
// Board.Draw renders through every camera.
//
// The view is axis-aligned: a world rectangle stays a screen rectangle, so
// hover and slot tests behave the same at every zoom level.
type Camera struct {
	// X and Y are the world position shown at the center of the viewport.
	X, Y float64
	// Zoom is screen pixels per world unit. It must be positive.
	Zoom float64
	// Viewport is the screen rectangle the camera covers.
	Viewport Rect

	// CullEnabled skips objects outside VisibleBounds when drawing.
	CullEnabled bool

	pan *panTween
}

func newCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:        1,
		Viewport:    viewport,
		CullEnabled: true,
	}
}

// ScrollTo pans the camera center to (x, y) over duration seconds. The pan
// advances once per Board.Update and replaces any pan in progress.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.pan = &panTween{
		x: gween.New(float32(c.X), float32(x), duration, easeFn),
		y: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// ScrollToObject pans so the object's center ends up in the middle of the
// viewport.
func (c *Camera) ScrollToObject(o *Object, duration float32, easeFn ease.TweenFunc) {
	c.ScrollTo(o.X, o.Y, duration, easeFn)
}

// Scrolling reports whether a pan is in progress.
func (c *Camera) Scrolling() bool {
	return c.pan != nil
}

// update advances the pan by dt seconds.
func (c *Camera) update(dt float32) {
	p := c.pan
	if p == nil {
		return
	}
	if !p.doneX {
		v, done := p.x.Update(dt)
		c.X, p.doneX = float64(v), done
	}
	if !p.doneY {
		v, done := p.y.Update(dt)
		c.Y, p.doneY = float64(v), done
	}
	if p.doneX && p.doneY {
		c.pan = nil
	}
}

// computeViewMatrix returns the world-to-screen matrix:
// Translate(viewport center) * Scale(Zoom) * Translate(-X, -Y).
func (c *Camera) computeViewMatrix() [6]float64 {
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	z := c.Zoom
	return [6]float64{z, 0, 0, z, cx - z*c.X, cy - z*c.Y}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return transformPoint(c.computeViewMatrix(), wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return transformPoint(invertAffine(c.computeViewMatrix()), sx, sy)
}

// project returns the world point under a screen position, and false when the
// position lies outside the viewport.
func (c *Camera) project(sx, sy float64) (Vec2, bool) {
	if !c.Viewport.Contains(sx, sy) {
		return Vec2{}, false
	}
	wx, wy := c.ScreenToWorld(sx, sy)
	return Vec2{X: wx, Y: wy}, true
}

// VisibleBounds returns the world rectangle covered by the viewport.
func (c *Camera) VisibleBounds() Rect {
	x0, y0 := c.ScreenToWorld(c.Viewport.X, c.Viewport.Y)
	x1, y1 := c.ScreenToWorld(c.Viewport.X+c.Viewport.Width, c.Viewport.Y+c.Viewport.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
