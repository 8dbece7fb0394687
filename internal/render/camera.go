package render

// Camera translates between world coordinates and screen coordinates.
// World X is multiplied by 2 because emoji occupy 2 terminal columns.
// World Y grows upward while screen rows grow downward.
type Camera struct {
	OffsetX    int // leftmost visible world column
	OffsetY    int // topmost visible world row
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Resize changes the viewport, keeping the current center.
func (c *Camera) Resize(viewW, viewH int) {
	cx, cy := c.ScreenToWorld(c.ViewWidth/2, c.ViewHeight/2)
	c.ViewWidth, c.ViewHeight = viewW, viewH
	c.Center(cx, cy)
}

// Center repositions the camera so that world position (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	// ViewWidth is in columns; each world tile is 2 columns wide.
	c.OffsetX = cx - (c.ViewWidth/2)/2
	c.OffsetY = cy + c.ViewHeight/2
}

// Frame centers the whole w×h map when it fits in the viewport, and
// otherwise follows (cx, cy).
func (c *Camera) Frame(w, h, cx, cy int) {
	if w*2 <= c.ViewWidth && h <= c.ViewHeight {
		c.OffsetX = -(c.ViewWidth/2 - w) / 2
		c.OffsetY = h - 1 + (c.ViewHeight-h)/2
		return
	}
	c.Center(cx, cy)
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * 2
	sy = c.OffsetY - wy
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/2 + c.OffsetX, c.OffsetY - sy
}
