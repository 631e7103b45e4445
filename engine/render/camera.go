package render

import "math"

// Camera is the viewport into the top-down world. World units are
// screen pixels at zoom 1, +y down matching the screen.
type Camera struct {
	X, Y    float64 // world position at the viewport center
	Zoom    float64
	MinZoom float64
	MaxZoom float64
	ScreenW int // viewport width in pixels
	ScreenH int // viewport height in pixels

	// Arena bounds for clamping, zero means unclamped
	WorldW float64
	WorldH float64
}

// NewCamera creates a camera with default settings
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		Zoom:    1.0,
		MinZoom: 0.5,
		MaxZoom: 2.5,
		ScreenW: screenW,
		ScreenH: screenH,
	}
}

// SetWorldBounds sets the arena size the viewport stays inside
func (c *Camera) SetWorldBounds(w, h float64) {
	c.WorldW = w
	c.WorldH = h
	c.clamp()
}

// Follow centers the camera on a world position
func (c *Camera) Follow(wx, wy float64) {
	c.X = wx
	c.Y = wy
	c.clamp()
}

// Pan moves the camera by a screen-pixel delta
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clamp()
}

// SetZoom sets the zoom level with clamping
func (c *Camera) SetZoom(z float64) {
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, z))
}

// ZoomAt zooms toward a screen point
func (c *Camera) ZoomAt(delta float64, screenX, screenY int) {
	// Convert screen point to world before zoom
	wx, wy := c.ScreenToWorld(screenX, screenY)
	c.SetZoom(c.Zoom + delta)
	// Convert same screen point to world after zoom
	wx2, wy2 := c.ScreenToWorld(screenX, screenY)
	// Adjust camera to keep the point stationary
	c.X += wx - wx2
	c.Y += wy - wy2
	c.clamp()
}

// WorldToScreen converts a world position to screen pixels
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := (wx-c.X)*c.Zoom + float64(c.ScreenW)/2
	sy := (wy-c.Y)*c.Zoom + float64(c.ScreenH)/2
	return sx, sy
}

// ScreenToWorld converts a screen pixel to a world position
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	wx := (float64(sx)-float64(c.ScreenW)/2)/c.Zoom + c.X
	wy := (float64(sy)-float64(c.ScreenH)/2)/c.Zoom + c.Y
	return wx, wy
}

// VisibleRect returns the world rectangle on screen, padded for
// culling
func (c *Camera) VisibleRect(pad float64) (minX, minY, maxX, maxY float64) {
	hw := float64(c.ScreenW) / 2 / c.Zoom
	hh := float64(c.ScreenH) / 2 / c.Zoom
	return c.X - hw - pad, c.Y - hh - pad, c.X + hw + pad, c.Y + hh + pad
}

// clamp keeps the viewport inside the arena when bounds are set. An
// arena smaller than the viewport stays centered.
func (c *Camera) clamp() {
	if c.WorldW <= 0 || c.WorldH <= 0 {
		return
	}
	hw := float64(c.ScreenW) / 2 / c.Zoom
	hh := float64(c.ScreenH) / 2 / c.Zoom
	c.X = clampAxis(c.X, hw, c.WorldW)
	c.Y = clampAxis(c.Y, hh, c.WorldH)
}

func clampAxis(v, half, size float64) float64 {
	if size <= half*2 {
		return size / 2
	}
	if v < half {
		return half
	}
	if v > size-half {
		return size - half
	}
	return v
}
