// Package camera maps the unit torus the agents live on onto the screen.
package camera

import "math"

// Camera controls the viewport into the simulation world.
// The world is the unit square with both axes wrapping; +Y points up on
// screen so headings read counter-clockwise.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom multiplies the fit scale (1.0 = whole world fits the viewport)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the world showing all of it.
func New(viewportW, viewportH float32) *Camera {
	return &Camera{
		X:         0.5,
		Y:         0.5,
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   1.0,
		MaxZoom:   8.0,
	}
}

// Scale returns screen pixels per world unit at the current zoom.
func (c *Camera) Scale() float32 {
	return min(c.ViewportW, c.ViewportH) * c.Zoom
}

// WorldToScreen converts world coordinates to screen coordinates, taking
// the shortest way around the torus from the camera center.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return c.project(toroidalDelta(wx, c.X), toroidalDelta(wy, c.Y))
}

func (c *Camera) project(dx, dy float32) (sx, sy float32) {
	scale := c.Scale()
	return c.ViewportW/2 + dx*scale, c.ViewportH/2 - dy*scale
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	scale := c.Scale()
	dx := (sx - c.ViewportW/2) / scale
	dy := (c.ViewportH/2 - sy) / scale

	return mod1(c.X + dx), mod1(c.Y + dy)
}

// IsVisible returns true if a circle at (wx, wy) with given world radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	dx := toroidalDelta(wx, c.X)
	dy := toroidalDelta(wy, c.Y)

	scale := c.Scale()
	halfW := c.ViewportW/(2*scale) + radius
	halfH := c.ViewportH/(2*scale) + radius

	return absf(dx) <= halfW && absf(dy) <= halfH
}

// GhostPositions returns extra screen positions for a circle that straddles
// a world edge inside the view, so it is drawn on both sides of the seam.
func (c *Camera) GhostPositions(wx, wy, radius float32) [][2]float32 {
	var ghosts [][2]float32

	dx := toroidalDelta(wx, c.X)
	dy := toroidalDelta(wy, c.Y)

	var shiftsX, shiftsY []float32
	shiftsX = append(shiftsX, 0)
	shiftsY = append(shiftsY, 0)
	if dx+radius > 0.5 {
		shiftsX = append(shiftsX, -1)
	} else if dx-radius < -0.5 {
		shiftsX = append(shiftsX, 1)
	}
	if dy+radius > 0.5 {
		shiftsY = append(shiftsY, -1)
	} else if dy-radius < -0.5 {
		shiftsY = append(shiftsY, 1)
	}

	for _, ox := range shiftsX {
		for _, oy := range shiftsY {
			if ox == 0 && oy == 0 {
				continue
			}
			sx, sy := c.project(dx+ox, dy+oy)
			ghosts = append(ghosts, [2]float32{sx, sy})
		}
	}
	return ghosts
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Pan moves the camera by the given delta in screen pixels.
// Automatically wraps around world boundaries.
func (c *Camera) Pan(dx, dy float32) {
	scale := c.Scale()
	c.X = mod1(c.X + dx/scale)
	c.Y = mod1(c.Y - dy/scale)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the default position and zoom.
func (c *Camera) Reset() {
	c.X = 0.5
	c.Y = 0.5
	c.Zoom = 1.0
}

// toroidalDelta computes the shortest signed distance from 'from' to 'to'
// on the unit circle.
func toroidalDelta(to, from float32) float32 {
	d := to - from
	if d > 0.5 {
		d -= 1
	} else if d < -0.5 {
		d += 1
	}
	return d
}

// TorusDistance returns the shortest distance between two points on the
// unit torus.
func TorusDistance(ax, ay, bx, by float32) float32 {
	dx := toroidalDelta(bx, ax)
	dy := toroidalDelta(by, ay)
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// mod1 wraps x into [0, 1).
func mod1(x float32) float32 {
	r := x - float32(math.Floor(float64(x)))
	if r >= 1 {
		r = 0
	}
	return r
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
